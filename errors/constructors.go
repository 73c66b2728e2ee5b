package errors

import "fmt"

// ConfigNotFound creates an error for a missing configuration file
func ConfigNotFound(path string) *WorkbenchError {
	return New(ErrCodeConfigNotFound, "workbench.yml not found").
		WithDetail("path", path)
}

// PanelNotFound creates an error for a panel that is not registered in any dock
func PanelNotFound(name string) *WorkbenchError {
	return New(ErrCodePanelNotFound, fmt.Sprintf("panel %q not found", name)).
		WithDetail("panel", name)
}

// InvalidPosition creates an error for an unrecognized dock position name
func InvalidPosition(value string) *WorkbenchError {
	return New(ErrCodeInvalidPosition, fmt.Sprintf("invalid dock position %q", value)).
		WithDetail("position", value).
		WithDetail("valid", []string{"left", "right", "bottom"})
}

// PositionRejected creates an error for a relocation a panel refuses
func PositionRejected(panel, position string) *WorkbenchError {
	return New(ErrCodePositionRejected, fmt.Sprintf("panel %q cannot dock at %s", panel, position)).
		WithDetail("panel", panel).
		WithDetail("position", position)
}

// SettingsSaveFailed wraps an error writing the workbench settings file
func SettingsSaveFailed(err error, path string) *WorkbenchError {
	return Wrap(err, ErrCodeSettingsSave, "failed to save settings").
		WithDetail("path", path)
}
