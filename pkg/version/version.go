package version

import "fmt"

// BoundcheckVersion indicates what version of boundcheck the binary belongs to
var BoundcheckVersion string

// GitCommit indicates which git commit the binary was built from
var GitCommit string

// String returns a pretty string concatenation of BoundcheckVersion and GitCommit
func String() string {
	return fmt.Sprintf("boundcheck version: %s\n        git commit: %s\n", BoundcheckVersion, GitCommit)
}
