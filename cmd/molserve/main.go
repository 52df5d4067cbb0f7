// Command molserve runs the gRPC health surface plus an HTTP debug mux
// (tailsql + pprof) over the analysis-results cache, so an operator can
// probe liveness and inspect cached analysis runs of a long-lived instance.
package main

import (
	"flag"
	"fmt"
	"log"
	"net/http"
	"net/http/pprof"
	"os"

	"github.com/molpp-go/molpp/internal/cache"
	"github.com/molpp-go/molpp/internal/debugsql"
	"github.com/molpp-go/molpp/internal/healthsrv"
	"github.com/molpp-go/molpp/internal/httputil"
	"github.com/molpp-go/molpp/internal/version"
)

func main() {
	grpcAddr := flag.String("grpc-addr", ":50051", "gRPC health service listen address")
	httpAddr := flag.String("http-addr", ":8080", "HTTP debug mux listen address")
	cachePath := flag.String("cache", "molcache.db", "path to the analysis-results cache database")
	showVersion := flag.Bool("version", false, "print version information and exit")
	flag.Parse()

	if *showVersion {
		fmt.Printf("molserve %s (%s, built %s)\n", version.Version, version.GitSHA, version.BuildTime)
		os.Exit(0)
	}

	ch, err := cache.Open(*cachePath)
	if err != nil {
		log.Fatalf("molserve: open cache: %v", err)
	}
	defer ch.Close()

	mux := http.NewServeMux()
	mux.HandleFunc("/status", func(w http.ResponseWriter, r *http.Request) {
		httputil.WriteJSONOK(w, map[string]string{
			"version":    version.Version,
			"git_sha":    version.GitSHA,
			"build_time": version.BuildTime,
		})
	})
	mux.HandleFunc("/debug/pprof/", pprof.Index)
	mux.HandleFunc("/debug/pprof/cmdline", pprof.Cmdline)
	mux.HandleFunc("/debug/pprof/profile", pprof.Profile)
	mux.HandleFunc("/debug/pprof/symbol", pprof.Symbol)
	mux.HandleFunc("/debug/pprof/trace", pprof.Trace)
	if err := debugsql.Mount(mux, ch.DB(), "molpp analysis cache"); err != nil {
		log.Fatalf("molserve: mount debug sql: %v", err)
	}

	health := healthsrv.New()
	health.MarkServing()
	defer health.Stop()

	go func() {
		log.Printf("molserve: http debug mux listening on %s", *httpAddr)
		if err := http.ListenAndServe(*httpAddr, mux); err != nil {
			log.Fatalf("molserve: http mux: %v", err)
		}
	}()

	log.Printf("molserve: grpc health service listening on %s", *grpcAddr)
	if err := health.Serve(*grpcAddr); err != nil {
		log.Fatalf("molserve: grpc serve: %v", err)
	}
}
