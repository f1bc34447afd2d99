package bulkfm

// Rename runs the bulk-rename flow programmatically over files, using the
// given configuration (nil means defaults). The returned status follows
// the shell convention.
func Rename(files []string, cfg *Config) (Summary, int, error) {
	app, err := NewApp(cfg)
	if err != nil {
		return Summary{}, exitFailure, err
	}
	status := app.BulkRename(append([]string{"br"}, files...))
	return app.Summary(), status, nil
}

// Remove runs the bulk-remove flow programmatically. target and editor
// follow the command-line semantics and may be empty.
func Remove(target, editor string, cfg *Config) (Summary, int, error) {
	app, err := NewApp(cfg)
	if err != nil {
		return Summary{}, exitFailure, err
	}
	status := app.BulkRemove(target, editor)
	return app.Summary(), status, nil
}
