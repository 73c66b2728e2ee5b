package cli

import (
	stderrors "errors"
	"fmt"
	"io"
	"os"

	"github.com/grovetools/workbench/errors"
)

// ErrorHandler turns coded errors into actionable terminal messages.
type ErrorHandler struct {
	Verbose bool
	Out     io.Writer
}

// NewErrorHandler creates a handler writing to stderr.
func NewErrorHandler(verbose bool) *ErrorHandler {
	return &ErrorHandler{Verbose: verbose, Out: os.Stderr}
}

// Handle prints guidance for err and returns it unchanged, so callers can
// still exit nonzero on it.
func (h *ErrorHandler) Handle(err error) error {
	var wbErr *errors.WorkbenchError
	stderrors.As(err, &wbErr)

	headline, hint := explain(err, wbErr)
	fmt.Fprintf(h.Out, "❌ %s\n", headline)
	if hint != "" {
		fmt.Fprintln(h.Out, hint)
	}

	if h.Verbose && wbErr != nil {
		fmt.Fprintf(h.Out, "\nError details:\n%s\n", wbErr.ToJSON())
	}
	return err
}

// explain maps an error code to a headline and a follow-up hint. Codes
// without a dedicated message fall through to the raw error text.
func explain(err error, wbErr *errors.WorkbenchError) (string, string) {
	var details map[string]interface{}
	if wbErr != nil {
		details = wbErr.Details
	}

	switch errors.GetCode(err) {
	case errors.ErrCodeConfigNotFound:
		return "Configuration not found. Run 'workbench config init' to create a new workbench.yml.", ""

	case errors.ErrCodePanelNotFound:
		return fmt.Sprintf("Panel '%v' is not registered in any dock", details["panel"]),
			"Run 'workbench config show' to see the configured panels."

	case errors.ErrCodeInvalidPosition:
		return fmt.Sprintf("'%v' is not a dock position", details["position"]),
			"Valid positions are left, right and bottom."

	case errors.ErrCodePositionRejected:
		return fmt.Sprintf("Panel '%v' cannot dock at %v", details["panel"], details["position"]),
			"Pick one of the positions the panel's relocate menu offers."

	case errors.ErrCodeSettingsSave:
		return fmt.Sprintf("Could not save settings to %v", details["path"]),
			"Check that the file is writable. The change is still applied for this session."

	case errors.ErrCodeBridgeListen:
		return "Event bridge failed to listen. Is another workbench already running?",
			"Change bridge.listen in workbench.yml or stop the other instance."
	}

	return fmt.Sprintf("Error: %v", err), ""
}
