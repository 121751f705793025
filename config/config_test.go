package config
import (
	"path/filepath"
	"testing"

	"pixveil/util"
)

func TestSaveAndLoadConfig( t *testing.T ) {
	conf := FullConfig{
		SteganoConfig{
			"/tmp/decoys",
			"png",
			[]string{ "png", "bmp" },
		},
		util.LoggerInfo{
			Filename: "/tmp/log.log",
			Mode: util.Error,
		},
	}
	filename := filepath.Join( t.TempDir(), "config.yaml" )
	if err := SaveConfig( filename, &conf ); err != nil {
		t.Errorf("Failed to save configuration: %s", err.Error())
	}
	conf2, err := LoadConfig( filename )
	if err != nil {
		t.Errorf("Failed to load configuration: %s", err.Error())
	}
	if conf.StegConfig.Folder != conf2.StegConfig.Folder ||
		conf.StegConfig.OutputFormat != conf2.StegConfig.OutputFormat ||
		conf.Logger.Filename != conf2.Logger.Filename {
		t.Errorf("Configuration was changed during the save/load process")
	}
}

func TestValidateOutputFormat( t *testing.T ) {
	conf := DefaultConfig( "/tmp/decoys", "/tmp/log.log" )
	if err := conf.Validate(); err != nil {
		t.Errorf("Default configuration must validate: %s", err.Error())
	}

	for _, format := range []string{ "png", "bmp", "" } {
		conf.StegConfig.OutputFormat = format
		if err := conf.Validate(); err != nil {
			t.Errorf("Format %q must validate: %s", format, err.Error())
		}
	}
	for _, format := range []string{ "jpeg", "jpg", "webp", "gif" } {
		conf.StegConfig.OutputFormat = format
		if err := conf.Validate(); err == nil {
			t.Errorf("Lossy format %q was accepted", format)
		}
	}
}
