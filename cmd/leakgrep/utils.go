package main

// Precedence helpers: a CLI value wins over the config file; the zero value
// means "unset" for flags, nil means "unset" for the file.

func pickString(cli string, file *string) string {
	if cli != "" {
		return cli
	}
	if file != nil {
		return *file
	}
	return ""
}

func pickInt(cli int, file *int) int {
	if cli != 0 {
		return cli
	}
	if file != nil {
		return *file
	}
	return 0
}

func pickInt64(cli int64, file *int64) int64 {
	if cli != 0 {
		return cli
	}
	if file != nil {
		return *file
	}
	return 0
}

func pickFloat(cli float64, file *float64) float64 {
	if cli != 0 {
		return cli
	}
	if file != nil {
		return *file
	}
	return 0
}

func pickBool(cli bool, file *bool) bool {
	if cli {
		return true
	}
	if file != nil {
		return *file
	}
	return false
}
