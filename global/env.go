package global

import (
	"github.com/haierkeys/memos-mirror/pkg/fileurl"
)

var (
	// ROOT is the directory of the running binary.
	ROOT string
	Name string = "Memos Mirror"
)

func init() {
	ROOT = fileurl.GetExePath() + "/"
}
