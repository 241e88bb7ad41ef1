package config

import "fmt"

// DataConfig locates the reference-data input sources. The first readable
// source wins: spreadsheet, then CSV, then the bundled sample.
type DataConfig struct {
	// XLSXPath is the user-supplied spreadsheet file.
	XLSXPath string `json:"xlsx_path"`
	// CSVPath is the user-supplied comma-separated file.
	CSVPath string `json:"csv_path"`
	// SamplePath is the bundled default sample file.
	SamplePath string `json:"sample_path"`
}

// SetDefaults applies sane defaults.
func (c *DataConfig) SetDefaults() {
	if c.XLSXPath == "" {
		c.XLSXPath = "data/ev_data.xlsx"
	}
	if c.CSVPath == "" {
		c.CSVPath = "data/ev_data.csv"
	}
	if c.SamplePath == "" {
		c.SamplePath = "data/sample_ev_data.csv"
	}
}

// Validate checks mandatory fields.
func (c DataConfig) Validate() error {
	if c.SamplePath == "" {
		return fmt.Errorf("sample_path is required")
	}
	return nil
}
