// Command wialonctl is a minimal command line client for the Wialon
// Remote API, mainly useful to experiment with the protocol.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"

	"github.com/alecthomas/kingpin/v2"
	"github.com/apex/log"
	wialon "github.com/layrz/wialon-sdk-go"
	"github.com/layrz/wialon-sdk-go/internal/runtimex"
)

var (
	app    = kingpin.New("wialonctl", "Minimal Wialon Remote API client.")
	debug  = app.Flag("debug", "Toggle debug logging").Short('d').Bool()
	scheme = app.Flag("scheme", "Transport scheme").Default(wialon.DefaultScheme).String()
	host   = app.Flag("host", "Remote API host").Default(wialon.DefaultHost).String()
	port   = app.Flag("port", "Explicit API port (0 means none)").Int()
	token  = app.Flag("token", "Authentication token").String()
	sid    = app.Flag("sid", "Existing session id to reuse").String()

	callCmd    = app.Command("call", "Invoke a remote procedure by name")
	callMethod = callCmd.Arg("method", "Method name, e.g. core_search_items").Required().String()
	callParams = callCmd.Flag("params", "JSON arguments (object or array)").Default("{}").String()

	loginCmd = app.Command("login", "Login with the given token and print the response")

	geocodeCmd   = app.Command("geocode", "Reverse geocode the given coordinates")
	geocodeLat   = geocodeCmd.Arg("latitude", "Latitude").Required().Float64()
	geocodeLon   = geocodeCmd.Arg("longitude", "Longitude").Required().Float64()
	geocodeFlags = geocodeCmd.Flag("flags", "Geocoding flags (0 means default)").Int64()
)

func main() {
	cmd := kingpin.MustParse(app.Parse(os.Args[1:]))
	logmap := map[bool]log.Level{
		true:  log.DebugLevel,
		false: log.InfoLevel,
	}
	log.SetLevel(logmap[*debug])

	sess, err := wialon.NewSession(*scheme, *host, *port, *sid, nil)
	if err != nil {
		log.WithError(err).Fatal("cannot create session")
	}
	client := wialon.NewClient(sess, http.DefaultClient, log.Log)
	ctx := context.Background()

	switch cmd {
	case callCmd.FullCommand():
		docall(ctx, client)
	case loginCmd.FullCommand():
		dologin(ctx, client)
	case geocodeCmd.FullCommand():
		dogeocode(ctx, client)
	}
}

func docall(ctx context.Context, client *wialon.Client) {
	maybelogin(ctx, client)
	var args any
	if err := json.Unmarshal([]byte(*callParams), &args); err != nil {
		log.WithError(err).Fatal("cannot parse --params")
	}
	response, err := client.Call(ctx, *callMethod, args)
	if err != nil {
		log.WithError(err).Fatal("call failed")
	}
	printjson(response)
}

func dologin(ctx context.Context, client *wialon.Client) {
	response, err := client.Login(ctx, *token)
	if err != nil {
		log.WithError(err).Fatal("login failed")
	}
	printjson(response)
}

func dogeocode(ctx context.Context, client *wialon.Client) {
	maybelogin(ctx, client)
	address, err := client.ReverseGeocoding(ctx, *geocodeLat, *geocodeLon, *geocodeFlags)
	if err != nil {
		log.WithError(err).Fatal("reverse geocoding failed")
	}
	fmt.Println(address)
}

// maybelogin performs a login when a token was given and we are not
// reusing an existing session id.
func maybelogin(ctx context.Context, client *wialon.Client) {
	if *token == "" || *sid != "" {
		return
	}
	if _, err := client.Login(ctx, *token); err != nil {
		log.WithError(err).Fatal("login failed")
	}
}

func printjson(response any) {
	data, err := json.MarshalIndent(response, "", "    ")
	runtimex.PanicOnError(err, "json.MarshalIndent failed")
	fmt.Printf("%s\n", string(data))
}
