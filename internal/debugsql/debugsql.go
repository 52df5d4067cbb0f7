// Package debugsql mounts a live SQL browser over the analysis-results
// cache so an operator can inspect cached DSSP/bond-guess runs without a
// separate database client.
package debugsql

import (
	"database/sql"
	"fmt"
	"net/http"

	"github.com/tailscale/tailsql/server/tailsql"
)

const routePrefix = "/debug/tailsql/"

// Mount attaches a tailsql browser over db, labelled label, at routePrefix
// on mux.
func Mount(mux *http.ServeMux, db *sql.DB, label string) error {
	srv, err := tailsql.NewServer(tailsql.Options{RoutePrefix: routePrefix})
	if err != nil {
		return fmt.Errorf("debugsql: new tailsql server: %w", err)
	}
	srv.SetDB("sqlite://cache.db", db, &tailsql.DBOptions{Label: label})
	mux.Handle(routePrefix, srv.NewMux())
	return nil
}
