package util
import (
	"crypto/rand"
	"math/big"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

func RandInt( max int ) int {
	limit := big.NewInt( int64(max) )
	integer, err := rand.Int( rand.Reader, limit )
	if err != nil {
		return 0
	}
	return int(integer.Int64())
}

func GenFilename( prefix string, ext string ) string {
	return prefix + strconv.Itoa( RandInt(100000) ) + "." + ext
}

// a random decoy keeps repeated messages from reusing the same carrier.
func PickFileAtRandom( files []string ) (string, []string) {
	idx := RandInt( len(files) )
	file := files[idx]
	files = append( files[:idx], files[idx+1:]... )
	return file, files
}

func ReadFiles( folder string, supportedExtensions []string ) ([]string, error) {
	allFiles, err := os.ReadDir( folder )
	if err != nil {
		return nil, err
	}
	result := []string{}
	for _, f := range allFiles {
		for _, ext := range supportedExtensions {
			if strings.HasSuffix( f.Name(), "." + ext ) == true {
				result = append( result, filepath.Join( folder, f.Name() ) )
			}
		}
	}
	return result, nil
}
