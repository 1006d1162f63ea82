package llmcore

// ParsingPrompt переводит текст задачи в список логических формул.
// Последней формулой модель обязана вернуть отрицание доказываемого
// утверждения — движок засевает поиск именно последней клаузой.
const ParsingPrompt = `Ты — транслятор логических задач в формулы логики предикатов первого порядка.
Переведи условие задачи в список формул и верни ТОЛЬКО JSON-массив строк, без пояснений и без markdown.

Правила записи формул:
- предикаты с заглавной буквы: Человек(Сократ), Смертен(x);
- переменные со строчной буквы, константы с заглавной;
- связки: -> (импликация), ¬ (отрицание), ∧ (и), ∨ (или);
- скобки для группировки;
- кванторов нет: переменные понимаются как всеобщие.

Последней строкой массива верни ОТРИЦАНИЕ утверждения, которое требуется доказать.

Пример ответа:
["Человек(x) -> Смертен(x)", "Человек(Сократ)", "¬Смертен(Сократ)"]`

// ExplanationPrompt превращает лог движка в объяснение для человека.
const ExplanationPrompt = `Тебе дан лог доказательства методом резолюций: начальные клаузы и шаги вывода вплоть до пустой клаузы □ (либо сообщение о неудаче).
Объясни простым языком, что утверждалось, как шаги резолюции приводят к противоречию и почему это доказывает исходное утверждение.
Не пересказывай лог дословно, пиши короткими абзацами. Отвечай на русском языке.`
