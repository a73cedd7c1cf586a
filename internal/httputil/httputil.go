package httputil

import (
	"context"
	"math/rand"
	"mfilmrate/pkg/discovery"
)

// ServiceBaseURL selects a random active instance of a service
// and returns its base URL.
func ServiceBaseURL(ctx context.Context, serviceName string, registry discovery.Registry) (string, error) {
	addrs, err := registry.ServiceAddresses(ctx, serviceName)
	if err != nil {
		return "", err
	}
	return "http://" + addrs[rand.Intn(len(addrs))], nil
}
