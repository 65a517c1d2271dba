package configs

import "github.com/reusee/dscope"

// Module holds no providers; the Loader comes from the application's own
// config module, which knows the file names and the schema.
type Module struct {
	dscope.Module
}
