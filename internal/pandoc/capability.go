package pandoc

import "os/exec"

// Capability is the result of the one-time startup probe. Either the
// converter was found and answered a version query (Converter non-nil), or it
// is unavailable for the lifetime of the process. There is no re-probing.
type Capability struct {
	Converter *Converter
	Version   string
}

// Available reports whether conversion is possible.
func (c Capability) Available() bool {
	return c.Converter != nil
}

// Detect probes for a usable pandoc install. It never fails: any problem
// locating the binary or querying its version resolves to Unavailable.
func Detect() Capability {
	return detect(&ExecRunner{}, exec.LookPath)
}

func detect(runner Runner, lookPath func(string) (string, error)) Capability {
	path, err := lookPath("pandoc")
	if err != nil {
		return Unavailable()
	}

	conv := NewConverter(path, runner)
	version, err := conv.Version()
	if err != nil {
		// Binary present but broken; treat the same as missing.
		return Unavailable()
	}

	return Capability{Converter: conv, Version: version}
}

// Unavailable returns the no-converter capability.
func Unavailable() Capability {
	return Capability{}
}
