package main
import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"pixveil/config"
	"pixveil/stegano"
	"pixveil/stegano/img"
	"pixveil/stegano/text"
	"pixveil/util"
)

const (
	PixveilFolder = ".pixveil"
	ConfigFilename = "config.yaml"
	LogFilename = "log.log"
	DecoysFolder = "decoys"
)

func main() {

	if len( os.Args ) < 2 || os.Args[1] == "-h" || os.Args[1] == "--help" {
		help()
		return
	}

	home, err := os.UserHomeDir()
	if err != nil {
		fatal("Failed to get home directory:", err)
	}
	pixveilFolder := filepath.Join( home, PixveilFolder )

	if _, err = os.Stat( pixveilFolder ); err != nil {
		// folder unexistent, creating it.
		if err = os.MkdirAll( filepath.Join( pixveilFolder, DecoysFolder ), 0760 ); err != nil {
			fatal("Failed to create pixveil directory in user's home folder:", err)
		}
	}

	configFile := filepath.Join( pixveilFolder, ConfigFilename )
	// if the application is installed for the first time, create the
	// default configuration.
	if _, err := os.Stat( configFile ); err != nil {
		conf := defaultConfig( pixveilFolder )
		if err = config.SaveConfig( configFile, conf ); err != nil {
			fatal("Failed to save default configuration:", err)
		}
	}

	conf, err := config.LoadConfig( configFile )
	if err != nil {
		fatal("Failed to load configuration:", err)
	}
	logger := util.NewLogger( &conf.Logger )

	switch os.Args[1] {
	case "hide":
		if err = hide( conf, logger, os.Args[2:] ); err != nil {
			logger.LogError( err )
			fatal( "Failed to hide data:", err )
		}
	case "reveal":
		if err = reveal( conf, logger, os.Args[2:] ); err != nil {
			logger.LogError( err )
			fatal( "Failed to reveal data:", err )
		}
	case "capacity":
		if err = capacity( os.Args[2:] ); err != nil {
			fatal( "Failed to compute capacity:", err )
		}
	case "genconf":
		if err = config.SaveConfig( configFile, defaultConfig( pixveilFolder ) ); err != nil {
			fatal( "Failed to write default configuration:", err )
		}
		fmt.Println( "Wrote", configFile )
	default:
		help()
	}
}

// pick a decoy: a folder means a random supported file inside it.
func pickDecoy( conf *config.FullConfig, path string ) (string, error) {
	info, err := os.Stat( path )
	if err != nil {
		return "", err
	}
	if info.IsDir() == false {
		return path, nil
	}
	files, err := util.ReadFiles( path, conf.StegConfig.Extensions )
	if err != nil {
		return "", err
	}
	if len(files) == 0 {
		return "", fmt.Errorf("No decoy images in %s.", path)
	}
	file, _ := util.PickFileAtRandom( files )
	return file, nil
}

func readPayload( path string ) ([]byte, error) {
	if path == "-" {
		return io.ReadAll( os.Stdin )
	}
	return os.ReadFile( path )
}

func hide( conf *config.FullConfig, logger *util.Logger, args []string ) error {
	if len(args) < 2 {
		return fmt.Errorf("Usage: pixveil hide <decoy> <payload-file|-> [output]")
	}

	decoyPath, err := pickDecoy( conf, args[0] )
	if err != nil {
		return err
	}
	decoy, err := os.ReadFile( decoyPath )
	if err != nil {
		return err
	}
	data, err := readPayload( args[1] )
	if err != nil {
		return err
	}

	encoded, format, err := embed( conf, decoy, data )
	if err != nil {
		return err
	}

	output := util.GenFilename( "hidden-", format )
	if len(args) > 2 {
		output = args[2]
	}
	if err = os.WriteFile( output, encoded, 0660 ); err != nil {
		return err
	}
	logger.LogInfo( fmt.Sprintf("Hid %d bytes from %s in %s", len(data), args[1], output) )
	fmt.Printf("Hid %d bytes in %s\n", len(data), output)
	return nil
}

// embed data into the decoy, re-encoding flat carriers to the configured
// output format when one is set.
func embed( conf *config.FullConfig, decoy, data []byte ) ([]byte, string, error) {
	format := img.DetectFormat( decoy )
	target := conf.StegConfig.OutputFormat

	if target == "" || target == format || format == "gif" {
		encoded, err := img.Hide( decoy, data )
		return encoded, format, err
	}

	pix, width, height, err := img.DecodePixels( decoy )
	if err != nil {
		return nil, "", err
	}
	encoded, err := stegano.Encode( pix, data )
	if err != nil {
		return nil, "", err
	}
	out, err := img.EncodePixels( encoded, width, height, target )
	return out, target, err
}

func reveal( conf *config.FullConfig, logger *util.Logger, args []string ) error {
	if len(args) < 1 {
		return fmt.Errorf("Usage: pixveil reveal <image> [output]")
	}

	decoy, err := os.ReadFile( args[0] )
	if err != nil {
		return err
	}
	data, err := img.Reveal( decoy )
	if err != nil {
		return err
	}

	if len(args) > 1 {
		if err = os.WriteFile( args[1], data, 0660 ); err != nil {
			return err
		}
		logger.LogInfo( fmt.Sprintf("Revealed %d bytes from %s into %s", len(data), args[0], args[1]) )
		return nil
	}

	// without an output file, only print payloads that are actual text
	str, err := text.Interpret( data )
	if err != nil {
		return fmt.Errorf("Payload is not text ( %d bytes ); pass an output file.", len(data))
	}
	fmt.Println( str )
	return nil
}

func capacity( args []string ) error {
	if len(args) < 1 {
		return fmt.Errorf("Usage: pixveil capacity <image>")
	}
	decoy, err := os.ReadFile( args[0] )
	if err != nil {
		return err
	}
	c, err := img.CapacityOf( decoy )
	if err != nil {
		return err
	}
	if c < 0 {
		c = 0
	}
	fmt.Printf("%s can carry %d payload bytes\n", args[0], c)
	return nil
}

func defaultConfig( pixveilFolder string ) *config.FullConfig {
	return config.DefaultConfig(
		filepath.Join( pixveilFolder, DecoysFolder ),
		filepath.Join( pixveilFolder, LogFilename ),
	)
}

func fatal( args ...any ) {
	fmt.Println( args... )
	os.Exit(-1)
}

func help() {
	line := `Usage: ./pixveil <command> [arguments]

The following commands are supported:
	hide <decoy> <payload|->	embed a payload file in a decoy image
	reveal <image> [out]		extract a hidden payload
	capacity <image>		show how many bytes a decoy can carry
	genconf				write the default configuration
`

	fmt.Printf("%s", line)
}
