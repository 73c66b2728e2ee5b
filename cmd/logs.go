package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	stdlog "log"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/hpcloud/tail"
	"github.com/spf13/cobra"

	"github.com/grovetools/workbench/cli"
	"github.com/grovetools/workbench/config"
	"github.com/grovetools/workbench/logging"
	"github.com/grovetools/workbench/pkg/logging/logutil"
	"github.com/grovetools/workbench/tui/theme"
)

// NewLogsCmd creates the `logs` command.
func NewLogsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "logs [component]",
		Short: "Display workbench logs",
		Long: `Pretty-prints the newest workbench log file, or the file configured in the
logging section of workbench.yml. Pass a component name to pick that
component's log (demo, workspace, bridge, settings).

Examples:
  # Show the newest log file
  workbench logs

  # Follow the workspace component's log
  workbench logs workspace -f

  # Get the last 100 log lines in JSON format
  workbench logs --tail 100 --json
`,
		Args: cobra.MaximumNArgs(1),
		RunE: runLogsE,
	}

	cmd.Flags().BoolP("follow", "f", false, "Follow log output")
	cmd.Flags().Int("tail", -1, "Number of lines to show from the end of the log (default: all)")

	return cmd
}

func runLogsE(cmd *cobra.Command, args []string) error {
	logger := cli.GetLogger(cmd)
	opts := cli.GetOptions(cmd)

	var component string
	if len(args) > 0 {
		component = args[0]
	}

	var cfg *config.Config
	if opts.ConfigFile != "" {
		loaded, err := config.LoadFrom(opts.ConfigFile)
		if err != nil {
			return err
		}
		cfg = loaded
	} else if loaded, err := config.LoadDefault(); err == nil {
		cfg = loaded
	}

	var logCfg logging.Config
	if cfg != nil {
		_ = cfg.UnmarshalExtension("logging", &logCfg)
	}

	logFile, _, err := logutil.FindLogFile(cfg, component)
	if err != nil {
		return err
	}

	follow, _ := cmd.Flags().GetBool("follow")
	tailLines, _ := cmd.Flags().GetInt("tail")

	logger.WithField("log_file", logFile).Debug("Reading log file")
	fmt.Fprintln(os.Stderr, theme.DefaultTheme.Muted.Render("# "+logFile))

	// Existing content prints first; --tail trims it.
	lines, err := readLastLines(logFile, tailLines)
	if err != nil {
		return err
	}
	for _, line := range lines {
		printLogLine(line, &logCfg, opts.JSONOutput)
	}
	if !follow {
		return nil
	}

	// The tail picks up where the initial read left off and survives
	// rotation via ReOpen. Its own logger is silenced so it cannot
	// interleave with the log lines.
	t, err := tail.TailFile(logFile, tail.Config{
		Follow:   true,
		ReOpen:   true,
		Location: &tail.SeekInfo{Offset: 0, Whence: io.SeekEnd},
		Logger:   stdlog.New(io.Discard, "", 0),
	})
	if err != nil {
		return fmt.Errorf("failed to tail %s: %w", logFile, err)
	}
	defer t.Stop()

	for line := range t.Lines {
		if line.Err != nil {
			logger.Debugf("Tail error: %v", line.Err)
			continue
		}
		printLogLine(strings.TrimSpace(line.Text), &logCfg, opts.JSONOutput)
	}
	return nil
}

// readLastLines returns the file's lines, keeping only the last n when n >= 0.
func readLastLines(path string, n int) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read log file %s: %w", path, err)
	}
	content := strings.TrimRight(string(data), "\n")
	if content == "" {
		return nil, nil
	}
	lines := strings.Split(content, "\n")
	if n >= 0 && len(lines) > n {
		lines = lines[len(lines)-n:]
	}
	return lines, nil
}

func printLogLine(line string, logCfg *logging.Config, jsonOutput bool) {
	if line == "" {
		return
	}

	var logMap map[string]interface{}
	parsed := json.Unmarshal([]byte(line), &logMap) == nil

	// Component visibility config applies to structured lines only.
	if parsed {
		if component, ok := logMap["component"].(string); ok {
			if !logging.IsComponentVisible(component, logCfg) {
				return
			}
		}
	}

	if jsonOutput {
		printLogJSON(line, logMap, parsed)
		return
	}
	printLogText(line, logMap, parsed)
}

// printLogJSON prints a log line in JSON Lines format.
func printLogJSON(line string, logMap map[string]interface{}, parsed bool) {
	if !parsed {
		fallback := map[string]interface{}{
			"raw_line": line,
			"error":    "failed to parse original log line as JSON",
		}
		jsonData, _ := json.Marshal(fallback)
		fmt.Println(string(jsonData))
		return
	}
	jsonData, _ := json.Marshal(logMap)
	fmt.Println(string(jsonData))
}

// printLogText pretty-prints a log line for human consumption.
func printLogText(line string, logMap map[string]interface{}, parsed bool) {
	t := theme.DefaultTheme

	if !parsed {
		fmt.Println(line)
		return
	}

	ts, _ := logMap["time"].(string)
	level, _ := logMap["level"].(string)
	msg, _ := logMap["msg"].(string)
	component, _ := logMap["component"].(string)

	parsedTime, err := time.Parse(time.RFC3339Nano, ts)
	if err != nil {
		parsedTime, _ = time.Parse(time.RFC3339, ts)
	}
	timeStr := parsedTime.Format("15:04:05")

	var levelStyle lipgloss.Style
	switch strings.ToLower(level) {
	case "error", "fatal", "panic":
		levelStyle = t.Error
	case "warning":
		levelStyle = t.Warning
	case "info":
		levelStyle = t.Info
	default:
		levelStyle = t.Muted
	}
	levelStr := levelStyle.Render(strings.ToUpper(level))

	sortedKeys := []string{}
	for k := range logMap {
		if k != "time" && k != "level" && k != "msg" && k != "component" {
			sortedKeys = append(sortedKeys, k)
		}
	}
	sort.Strings(sortedKeys)

	otherFields := []string{}
	for _, k := range sortedKeys {
		otherFields = append(otherFields, fmt.Sprintf("%s=%v", t.Muted.Render(k), logMap[k]))
	}
	fieldsStr := strings.Join(otherFields, " ")

	fmt.Printf("%s %s %s [%s] %s\n",
		timeStr,
		levelStr,
		msg,
		t.Accent.Render(component),
		fieldsStr,
	)
}
