// Command cli is a small client for the feed service.
//
//	cli token -u u-alice                 mint an access token
//	cli feed -limit 10 -count            read the feed
//	cli diary -id 21                     read one entry
//	cli profile -user bob [-id 20]       list or read a profile's entries
//
// Every command but token accepts -a (server address) and -t (access token).
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/dmitrijs2005/diaryfeed/internal/buildinfo"
	"github.com/dmitrijs2005/diaryfeed/internal/common"
	"github.com/dmitrijs2005/diaryfeed/internal/server/auth"
	gs "github.com/dmitrijs2005/diaryfeed/internal/server/grpc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"
)

var errUsage = errors.New("usage: cli token|feed|diary|profile [flags]")

func main() {
	if err := run(context.Background(), os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, out io.Writer) error {
	if len(args) == 0 {
		return errUsage
	}

	switch args[0] {
	case "version":
		buildinfo.PrintBuildData(out)
		return nil
	case "token":
		return runToken(args[1:], out)
	case "feed", "diary", "profile":
		return runQuery(ctx, args[0], args[1:], out)
	default:
		return errUsage
	}
}

func runToken(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("token", flag.ContinueOnError)
	userID := fs.String("u", "", "user id (token subject)")
	secret := fs.String("s", "secretKey", "HMAC secret shared with the server")
	ttl := fs.Duration("ttl", time.Hour, "token lifetime")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *userID == "" {
		return errors.New("token: -u is required")
	}

	tok, err := auth.GenerateToken(*userID, []byte(*secret), *ttl)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(out, tok)
	return err
}

// queryRequest builds the request document for cmd from its flags.
func queryRequest(cmd string, args []string) (addr, token string, method string, req map[string]any, err error) {
	fs := flag.NewFlagSet(cmd, flag.ContinueOnError)
	a := fs.String("a", "localhost:50051", "server address")
	t := fs.String("t", "", "access token; empty means anonymous")
	limit := fs.Int("limit", common.DefaultFeedLimit, "page size")
	offset := fs.Int("offset", 0, "page offset")
	count := fs.Bool("count", false, "include total count")
	id := fs.Int64("id", 0, "diary id")
	user := fs.String("user", "", "profile username")
	if err = fs.Parse(args); err != nil {
		return
	}
	addr, token = *a, *t

	switch cmd {
	case "feed":
		method = "GetFeed"
		req = map[string]any{"limit": *limit, "offset": *offset, "include_count": *count}
	case "diary":
		if *id == 0 {
			err = errors.New("diary: -id is required")
			return
		}
		method = "GetDiary"
		req = map[string]any{"diary_id": *id}
	case "profile":
		if *user == "" {
			err = errors.New("profile: -user is required")
			return
		}
		method = "ListProfileDiaries"
		req = map[string]any{"username": *user}
		if *id != 0 {
			method = "GetProfileDiary"
			req["diary_id"] = *id
		}
	}
	return
}

func runQuery(ctx context.Context, cmd string, args []string, out io.Writer) error {
	addr, token, method, fields, err := queryRequest(cmd, args)
	if err != nil {
		return err
	}
	req, err := structpb.NewStruct(fields)
	if err != nil {
		return err
	}

	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return err
	}
	defer conn.Close()

	if token != "" {
		ctx = metadata.AppendToOutgoingContext(ctx, common.AccessTokenHeaderName, token)
	}
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client := gs.NewFeedClient(conn)
	calls := map[string]func(context.Context, *structpb.Struct, ...grpc.CallOption) (*structpb.Struct, error){
		"GetFeed":            client.GetFeed,
		"GetDiary":           client.GetDiary,
		"ListProfileDiaries": client.ListProfileDiaries,
		"GetProfileDiary":    client.GetProfileDiary,
	}

	resp, err := calls[method](ctx, req)
	if err != nil {
		return err
	}

	b, err := protojson.MarshalOptions{Multiline: true, Indent: "  "}.Marshal(resp)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(out, string(b))
	return err
}
