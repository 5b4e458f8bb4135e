package mediacsv

import "context"

// InputSource lists the export files a batch run should process.
// Sources may list paths that do not exist; the batch reports those as
// skipped rather than failing.
type InputSource interface {
	Inputs(ctx context.Context) ([]string, error)
}

// DefaultRange is the file range processed when no inputs are configured.
var DefaultRange = Range{From: 1, To: 61}

// DefaultPattern names the files of a numeric range.
const DefaultPattern = "%d.html"

// Range is a closed range of numbered input files.
type Range struct {
	From int `json:"from" yaml:"from"`
	To   int `json:"to" yaml:"to"`
}

// Validate returns an error if the range is empty or negative.
func (r Range) Validate() error {
	if r.From < 0 || r.To < 0 {
		return Errorf(EINVALID, "range bounds must not be negative")
	}
	if r.From > r.To {
		return Errorf(EINVALID, "range start %d is after end %d", r.From, r.To)
	}
	return nil
}

// BatchConfig describes which files a batch run processes and how.
// Input selection precedence is Inputs, then Glob, then Dir, then Range.
type BatchConfig struct {
	Inputs    []string `json:"inputs" yaml:"inputs"`
	Glob      string   `json:"glob" yaml:"glob"`
	Dir       string   `json:"dir" yaml:"dir"`
	Recursive bool     `json:"recursive" yaml:"recursive"`
	Range     *Range   `json:"range" yaml:"range"`
	Pattern   string   `json:"pattern" yaml:"pattern"`
	Window    *Window  `json:"window" yaml:"window"`
	CRLF      *bool    `json:"crlf" yaml:"crlf"`
}

// Validate returns an error if the configuration cannot drive a batch run.
func (c *BatchConfig) Validate() error {
	if c.Range != nil {
		if err := c.Range.Validate(); err != nil {
			return err
		}
	}
	if c.Window != nil && (c.Window.Before < 0 || c.Window.After < 0) {
		return Errorf(EINVALID, "window sizes must not be negative")
	}
	return nil
}
