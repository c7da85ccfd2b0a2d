// Copyright The AtlanticWave-SDX contributors.
// SPDX-License-Identifier: MIT

// Command sdxcli drives an AtlanticWave-SDX controller: topology and port
// discovery plus the full L2VPN lifecycle, authenticated with the FABRIC
// bearer token.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/atlanticwave-sdx/sdxlib-go/internal/domain/model"
	"github.com/atlanticwave-sdx/sdxlib-go/internal/infrastructure/sdx"
	"github.com/atlanticwave-sdx/sdxlib-go/internal/infrastructure/tokenauth"
	"github.com/atlanticwave-sdx/sdxlib-go/internal/service"
	logging "github.com/atlanticwave-sdx/sdxlib-go/pkg/log"
)

const usage = `usage: sdxcli [flags] <command> [args]

commands:
  ports              list facility ports with free VLANs
  topology           print the controller topology
  create             create an L2VPN (-name, repeated -endpoint)
  get <service_id>   print one L2VPN
  list               list the caller's L2VPNs
  update <service_id> patch an L2VPN (-name, -description, -state)
  delete <service_id> delete an L2VPN
  login              establish a controller session
  claims             print the decoded token claims
  validate           validate the bearer credential
`

func init() {
	logging.InitStructuredLogging()
}

// endpointsFlag collects repeated -endpoint values of the form
// <port_urn>=<vlan>.
type endpointsFlag []model.Endpoint

func (e *endpointsFlag) String() string {
	parts := make([]string, len(*e))
	for i, ep := range *e {
		parts[i] = ep.PortID + "=" + ep.VLAN
	}
	return strings.Join(parts, ",")
}

func (e *endpointsFlag) Set(value string) error {
	portID, vlan, ok := strings.Cut(value, "=")
	if !ok {
		return fmt.Errorf("endpoint must be <port_urn>=<vlan>, got %q", value)
	}
	*e = append(*e, model.Endpoint{PortID: portID, VLAN: vlan})
	return nil
}

func main() {
	var (
		urlF       = flag.String("url", os.Getenv("SDX_BASE_URL"), "controller base URL")
		tokenF     = flag.String("token", os.Getenv("FABRIC_TOKEN_LOCATION"), "token file path")
		jwksF      = flag.String("jwks-url", "", "JWKS URL for signature validation (optional)")
		audienceF  = flag.String("audience", "", "expected token audience (required with -jwks-url)")
		timeoutF   = flag.String("timeout", "", "request timeout, e.g. 30s")
		searchF    = flag.String("search", "", "filter listings by substring")
		archivedF  = flag.Bool("archived", false, "list archived services")
		nameF      = flag.String("name", "", "service name")
		descF      = flag.String("description", "", "service description")
		stateF     = flag.String("state", "", "admin state: enabled or disabled")
		endpointsF endpointsFlag
	)
	flag.Var(&endpointsF, "endpoint", "service endpoint as <port_urn>=<vlan> (repeatable)")
	flag.Usage = func() {
		fmt.Fprint(os.Stderr, usage)
		flag.PrintDefaults()
		os.Exit(2)
	}
	flag.Parse()

	if flag.NArg() < 1 {
		flag.Usage()
	}
	command := flag.Arg(0)

	ctx := context.Background()

	authConfig := tokenauth.DefaultConfig()
	if *tokenF != "" {
		authConfig.Path = *tokenF
	}
	authConfig.JWKSURL = *jwksF
	authConfig.Audience = *audienceF

	auth, err := tokenauth.NewAuthenticator(authConfig)
	if err != nil {
		fail(ctx, "invalid authenticator configuration", err)
	}
	if err := auth.Load(ctx); err != nil {
		fail(ctx, "failed to load bearer credential", err)
	}

	// Token-only commands work without a controller URL.
	switch command {
	case "claims":
		claims, err := auth.Decode()
		if err != nil {
			fail(ctx, "failed to decode claims", err)
		}
		printJSON(ctx, claims)
		return
	case "validate":
		if err := auth.Validate(ctx); err != nil {
			fail(ctx, "credential is not valid", err)
		}
		slog.InfoContext(ctx, "credential is valid",
			"sub", auth.Claims().Subject,
			"expiry", auth.Claims().Expiry,
		)
		return
	}

	config, err := sdx.NewConfig(*urlF, "", *timeoutF, 0, "")
	if err != nil {
		fail(ctx, "invalid controller configuration", err)
	}

	client := sdx.NewClient(config, auth)
	lifecycle := service.NewLifecycle(client)
	inventory := service.NewPortInventory(client)

	switch command {
	case "ports":
		ports, err := inventory.AvailablePorts(ctx, *searchF)
		if err != nil {
			fail(ctx, "failed to list available ports", err)
		}
		printJSON(ctx, ports)

	case "topology":
		topology, err := client.GetTopology(ctx)
		if err != nil {
			fail(ctx, "failed to fetch topology", err)
		}
		printJSON(ctx, topology)

	case "create":
		serviceID, err := lifecycle.Create(ctx, model.CreateRequest{
			Name:        *nameF,
			Endpoints:   endpointsF,
			Description: *descF,
		})
		if err != nil {
			fail(ctx, "failed to create L2VPN", err)
		}
		printJSON(ctx, map[string]string{"service_id": serviceID})

	case "get":
		svc, err := lifecycle.Get(ctx, requireArg(1, "service_id"))
		if err != nil {
			fail(ctx, "failed to get L2VPN", err)
		}
		printJSON(ctx, svc)

	case "list":
		services, err := lifecycle.List(ctx, model.ListFilter{
			Archived: *archivedF,
			Search:   *searchF,
		})
		if err != nil {
			fail(ctx, "failed to list L2VPNs", err)
		}
		printJSON(ctx, services)

	case "update":
		serviceID := requireArg(1, "service_id")
		req := model.UpdateRequest{}
		if *nameF != "" {
			req.Name = nameF
		}
		if *descF != "" {
			req.Description = descF
		}
		if *stateF != "" {
			req.State = stateF
		}
		if err := lifecycle.Update(ctx, serviceID, req); err != nil {
			fail(ctx, "failed to update L2VPN", err)
		}
		slog.InfoContext(ctx, "updated L2VPN", "service_id", serviceID)

	case "delete":
		serviceID := requireArg(1, "service_id")
		if err := lifecycle.Delete(ctx, serviceID); err != nil {
			fail(ctx, "failed to delete L2VPN", err)
		}
		slog.InfoContext(ctx, "deleted L2VPN", "service_id", serviceID)

	case "login":
		session, err := client.Login(ctx)
		if err != nil {
			fail(ctx, "failed to establish session", err)
		}
		printJSON(ctx, session)

	default:
		flag.Usage()
	}
}

func requireArg(n int, name string) string {
	if flag.NArg() <= n {
		fmt.Fprintf(os.Stderr, "missing required argument: %s\n", name)
		os.Exit(2)
	}
	return flag.Arg(n)
}

func printJSON(ctx context.Context, v any) {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fail(ctx, "failed to encode output", err)
	}
	fmt.Println(string(out))
}

func fail(ctx context.Context, message string, err error) {
	slog.ErrorContext(ctx, message, "error", err)
	os.Exit(1)
}
