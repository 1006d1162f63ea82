package backend

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	webview "github.com/webview/webview_go"

	"logicprover/formula"
	"logicprover/llmcore"
	"logicprover/resolution"
)

var (
	cacheText        string
	cacheShortLog    string
	cacheExplanation string
)

// SolveProblemHandler возвращает функцию-обработчик для решения логических задач
func SolveProblemHandler(w webview.WebView) func(text string, showLog bool, callbackId string) {
	return func(text string, showLog bool, callbackId string) {
		// Запускаем в отдельной горутине
		go func() {
			send := func(result string) {
				w.Dispatch(func() {
					// Экранируем кавычки и переносы строк в результате
					escaped, _ := json.Marshal(result)
					w.Eval(fmt.Sprintf("window._resolveCallback('%s', %s)", callbackId, escaped))
				})
			}
			sendError := func(errMsg string) {
				send("❌ Ошибка: " + errMsg)
			}

			// Проверяем кэш - если текст тот же, просто переформатируем результат
			if cacheText == text && cacheShortLog != "" && cacheExplanation != "" {
				send(formatResult(cacheShortLog, cacheExplanation, showLog))
				return
			}

			// Шаг 1: Перевод текста в формулы через LLM
			raw, err := llmcore.LLMQuery(llmcore.ParsingPrompt, text, 0.2)
			fmt.Println("LLM Parsed:", raw)
			if err != nil {
				sendError(err.Error())
				return
			}

			formulas, err := llmcore.ExtractFormulas(raw)
			fmt.Println("After parse json:", formulas)
			if err != nil {
				sendError("Не удалось распознать логические формулы: " + err.Error())
				return
			}
			if len(formulas) == 0 {
				sendError("LLM вернул пустой результат. Попробуйте переформулировать задачу.")
				return
			}

			// Шаг 2: Компиляция формул в клаузы и запуск движка резолюций
			clauses, err := formula.Compile(strings.Join(formulas, ", "), formula.DialectA)
			if err != nil {
				sendError("Не удалось разобрать формулы: " + err.Error())
				return
			}
			engine := resolution.NewEngine()
			engine.SetClauses(clauses)
			proofResult := engine.Prove(context.Background())

			// при неудаче объясняем по полному логу: краткого нет
			proofLog := proofResult.ShortLog
			if !proofResult.Success {
				proofLog = proofResult.FullLog
			}
			fmt.Println("PROOF LOG:", proofLog)

			// Шаг 3: Генерация объяснения через LLM
			explanation, err := llmcore.LLMQuery(llmcore.ExplanationPrompt, proofLog, 0.4)
			fmt.Println("EXPLANATION:", explanation)
			if err != nil {
				// Если не удалось получить объяснение, показываем хотя бы лог
				explanation = "(Не удалось сгенерировать объяснение: " + err.Error() + ")"
			}

			// Сохраняем в кэш
			cacheText = text
			cacheShortLog = proofLog
			cacheExplanation = explanation

			send(formatResult(proofLog, explanation, showLog))
		}()
	}
}

func formatResult(proofLog, explanation string, showLog bool) string {
	if !showLog {
		return explanation
	}
	return "=== Лог движка резолюций ===\n" + proofLog + "\n\n=== Объяснение ===\n" + explanation
}
