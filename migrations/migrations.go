// Package migrations embeds the SQL schema migrations for every supported database.
package migrations

import (
	"embed"
	"fmt"
	"io/fs"
)

//go:embed postgresql/*.sql mysql/*.sql sqlite/*.sql
var files embed.FS

// dirs maps a database driver name to its migrations directory.
var dirs = map[string]string{
	"postgres": "postgresql",
	"mysql":    "mysql",
	"sqlite":   "sqlite",
}

// Dir returns the migrations directory name for the given driver.
func Dir(driver string) (string, error) {
	dir, ok := dirs[driver]
	if !ok {
		return "", fmt.Errorf("unsupported database driver: %s", driver)
	}
	return dir, nil
}

// FS returns the embedded migration files for the given driver, rooted at its
// directory so it can be handed to golang-migrate's iofs source as ".".
func FS(driver string) (fs.FS, error) {
	dir, err := Dir(driver)
	if err != nil {
		return nil, err
	}
	return fs.Sub(files, dir)
}
