package main

import (
	"context"
	"embed"
	"flag"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"runtime"
	"strings"

	"github.com/fatih/color"
	webview "github.com/webview/webview_go"

	"logicprover/backend"
	"logicprover/formula"
	"logicprover/resolution"
)

//go:embed assets/*
var assets embed.FS

func main() {
	dialectName := flag.String("dialect", "a", "диалект классификации термов: a или b")
	limit := flag.Int("limit", resolution.DefaultStepLimit, "предел числа шагов поиска")
	noColor := flag.Bool("no-color", false, "отключить цветной вывод")
	flag.Parse()

	// формулы в аргументах — консольный режим, иначе окно
	if flag.NArg() > 0 {
		runCLI(flag.Args(), *dialectName, *limit, *noColor)
		return
	}
	runGUI()
}

// runCLI доказывает формулы, переданные аргументами командной строки,
// и печатает полный лог поиска и путь доказательства.
func runCLI(args []string, dialectName string, limit int, noColor bool) {
	if noColor {
		color.NoColor = true
	}

	dialect, err := formula.ParseDialect(dialectName)
	if err != nil {
		log.Fatal(err)
	}
	clauses, err := formula.Compile(strings.Join(args, ", "), dialect)
	if err != nil {
		log.Fatal(err)
	}

	engine := resolution.NewEngine()
	engine.StepLimit = limit
	engine.SetClauses(clauses)
	result := engine.Prove(context.Background())

	title := color.New(color.FgCyan, color.Bold)
	title.Println("Полный лог поиска")
	fmt.Println(result.FullLog)

	if result.Success {
		fmt.Println()
		fmt.Println(result.ShortLog)
		color.New(color.FgGreen, color.Bold).Println("\nИтог: формула доказана")
		return
	}

	verdict := color.New(color.FgRed, color.Bold)
	switch result.Status {
	case resolution.StatusStepLimit:
		verdict.Println("\nИтог: превышен лимит шагов")
	default:
		verdict.Println("\nИтог: формула не доказана")
	}
	os.Exit(1)
}

// runGUI открывает окно с веб-интерфейсом решателя.
func runGUI() {
	// Disable WebKit compositing mode on Linux to avoid rendering issues
	if runtime.GOOS == "linux" {
		os.Setenv("WEBKIT_DISABLE_COMPOSITING_MODE", "1")
		os.Setenv("WEBKIT_DISABLE_DMABUF_RENDERER", "1")
		os.Setenv("GDK_BACKEND", "x11")
	}

	ln, err := net.Listen("tcp", "127.0.0.1:51115")
	if err != nil {
		log.Fatal(err)
	}
	defer ln.Close()

	// launch server in background
	go http.Serve(ln, http.FileServer(http.FS(assets)))

	// launch window
	w := webview.New(true)
	defer w.Destroy()
	w.SetTitle("Logic Prover")
	w.SetSize(500, 700, webview.HintNone)

	// API функция (Backend логика)
	w.Bind("solveProblemAsync", backend.SolveProblemHandler(w))

	w.Navigate("http://" + ln.Addr().String() + "/assets/index.html")

	w.Run()
}
