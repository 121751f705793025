package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"pixveil/util"
)

// steganography parameters
type SteganoConfig struct {
	Folder		string		`yaml:"decoy_files_folder"`	// where decoy images live
	OutputFormat	string		`yaml:"output_format"`		// png or bmp; empty keeps the decoy's format
	Extensions	[]string	`yaml:"decoy_extensions"`	// which files in the folder count as decoys
}

/*
 * Full configuration of the tool, stored as plain YAML.
 */
type FullConfig struct {
	StegConfig	SteganoConfig	`yaml:"steganography_config"`
	Logger		util.LoggerInfo	`yaml:"logger_config"`
}

func LoadConfig( filename string ) (*FullConfig, error) {
	data, err := os.ReadFile( filename )
	if err != nil {
		return nil, err
	}

	var conf FullConfig
	if err := yaml.Unmarshal( data, &conf ); err != nil {
		return nil, err
	}
	if err := conf.Validate(); err != nil {
		return nil, err
	}
	return &conf, nil
}

func SaveConfig( filename string, conf *FullConfig ) error {
	data, err := yaml.Marshal( conf )
	if err != nil {
		return err
	}
	return os.WriteFile( filename, data, 0660 )
}

// only lossless output formats survive embedding; reject the rest here,
// before any image work starts.
func(conf *FullConfig) Validate() error {
	switch conf.StegConfig.OutputFormat {
	case "", "png", "bmp":
		return nil
	}
	return fmt.Errorf("Unsupported output format %q: only png and bmp keep embedded data intact.",
		conf.StegConfig.OutputFormat)
}

func DefaultConfig( folder string, logFile string ) *FullConfig {
	return &FullConfig{
		StegConfig: SteganoConfig{
			Folder: folder,
			OutputFormat: "",
			Extensions: []string{ "png", "bmp", "gif" },
		},
		Logger: util.LoggerInfo{
			Filename: logFile,
			IsColored: true,
			SaveTime: true,
			Mode: util.Error | util.Warning,
		},
	}
}
