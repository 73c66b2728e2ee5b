package logging

import (
	"bytes"
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/grovetools/workbench/tui/theme"
)

// TextFormatter renders entries as single hand-readable lines:
// timestamp [LEVEL] [component] msg key=value.
type TextFormatter struct {
	Config FormatConfig
}

func (f *TextFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	var b bytes.Buffer

	if !f.Config.DisableTimestamp {
		b.WriteString(entry.Time.Format("2006-01-02 15:04:05") + " ")
	}
	fmt.Fprintf(&b, "[%s]", levelTag(entry.Level))

	if component, ok := entry.Data["component"]; ok && !f.Config.DisableComponent {
		fmt.Fprintf(&b, " [%s]", theme.DefaultTheme.Accent.Render(fmt.Sprint(component)))
	}
	if entry.HasCaller() {
		fmt.Fprintf(&b, " [%s:%d %s]",
			filepath.Base(entry.Caller.File), entry.Caller.Line,
			filepath.Base(entry.Caller.Function))
	}

	b.WriteString(" " + entry.Message)

	// Extra fields in stable order.
	for _, key := range sortedFieldKeys(entry.Data) {
		fmt.Fprintf(&b, " %s=%v", key, entry.Data[key])
	}

	b.WriteByte('\n')
	return b.Bytes(), nil
}

// levelTag shortens logrus's "warning" so level tags line up.
func levelTag(level logrus.Level) string {
	if level == logrus.WarnLevel {
		return "WARN"
	}
	return strings.ToUpper(level.String())
}

func sortedFieldKeys(data logrus.Fields) []string {
	keys := make([]string, 0, len(data))
	for key := range data {
		if key != "component" {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)
	return keys
}
