package utils

import (
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/fatih/color"
)

var (
	Info    = color.New(color.FgCyan).PrintfFunc()
	Success = color.New(color.FgGreen).PrintfFunc()
	Warning = color.New(color.FgYellow).PrintfFunc()
	Error   = color.New(color.FgRed).FprintfFunc()
	Debug   = color.New(color.FgHiBlack).PrintfFunc()

	// Bold helper
	Bold = color.New(color.Bold).SprintFunc()

	logFile *os.File
	verbose bool
	mu      sync.Mutex
)

// InitLogger appends every log line, with a timestamp, to path.
func InitLogger(path string) error {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	mu.Lock()
	logFile = f
	mu.Unlock()
	return nil
}

func CloseLogger() {
	mu.Lock()
	defer mu.Unlock()
	if logFile != nil {
		logFile.Close()
		logFile = nil
	}
}

// SetVerbose enables LogDebug output. DEBUG=true in the environment does the same.
func SetVerbose(v bool) {
	mu.Lock()
	verbose = v
	mu.Unlock()
}

func debugEnabled() bool {
	mu.Lock()
	v := verbose
	mu.Unlock()
	return v || os.Getenv("DEBUG") == "true"
}

func logToFile(level string, msg string) {
	mu.Lock()
	defer mu.Unlock()
	if logFile != nil {
		ts := time.Now().Format("2006/01/02 15:04:05")
		fmt.Fprintf(logFile, "%s [%s] %s\n", ts, level, strings.TrimSpace(msg))
	}
}

func LogInfo(format string, a ...interface{}) {
	msg := fmt.Sprintf(format, a...)
	logToFile("INFO", msg)
	Info("[INFO] %s\n", msg)
}

func LogSuccess(format string, a ...interface{}) {
	msg := fmt.Sprintf(format, a...)
	logToFile("SUCCESS", msg)
	Success("[+] %s\n", msg)
}

func LogWarning(format string, a ...interface{}) {
	msg := fmt.Sprintf(format, a...)
	logToFile("WARNING", msg)
	Warning("[!] %s\n", msg)
}

// LogError writes to stderr so failures stay visible when stdout is piped.
func LogError(format string, a ...interface{}) {
	msg := fmt.Sprintf(format, a...)
	logToFile("ERROR", msg)
	Error(os.Stderr, "[-] %s\n", msg)
}

func LogDebug(format string, a ...interface{}) {
	if !debugEnabled() {
		return
	}
	msg := fmt.Sprintf(format, a...)
	logToFile("DEBUG", msg)
	Debug("[DEBUG] %s\n", msg)
}
