package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"time"

	filmmodel "mfilmrate/film/pkg/model"
	filmtest "mfilmrate/film/pkg/testutil"
	"mfilmrate/pkg/discovery/memory"
	recommendtest "mfilmrate/recommend/pkg/testutil"
	reviewtest "mfilmrate/review/pkg/testutil"
	usermodel "mfilmrate/user/pkg/model"
	usertest "mfilmrate/user/pkg/testutil"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"go.uber.org/zap"
)

const (
	userServiceAddress      = "localhost:8081"
	filmServiceAddress      = "localhost:8082"
	recommendServiceAddress = "localhost:8083"
	reviewServiceAddress    = "localhost:8084"
)

func main() {
	log.Println("Starting the integration test")

	ctx := context.Background()
	registry := memory.NewRegistry()
	logger := zap.NewNop()

	log.Println("Setting up service handlers")

	startService(ctx, registry, "user", userServiceAddress, usertest.NewTestUserHTTPHandler(logger))
	startService(ctx, registry, "film", filmServiceAddress, filmtest.NewTestFilmHTTPHandler(registry, logger))
	startService(ctx, registry, "recommend", recommendServiceAddress, recommendtest.NewTestRecommendHTTPHandler(registry, logger))
	startService(ctx, registry, "review", reviewServiceAddress, reviewtest.NewTestReviewHTTPHandler(registry, logger))

	log.Println("Registering users via user service")
	for id := 1; id <= 3; id++ {
		status := call(http.MethodPut, userServiceAddress, "/user", url.Values{
			"id":       {strconv.Itoa(id)},
			"email":    {fmt.Sprintf("user%d@example.com", id)},
			"login":    {fmt.Sprintf("user%d", id)},
			"birthday": {"1990-05-01"},
		}, nil)
		if status != http.StatusOK {
			log.Fatalf("put user %d: status %d", id, status)
		}
	}

	log.Println("Storing films via film service")
	for _, id := range []int{10, 20, 30} {
		status := call(http.MethodPut, filmServiceAddress, "/film", url.Values{
			"id":           {strconv.Itoa(id)},
			"name":         {fmt.Sprintf("Film %d", id)},
			"duration":     {"100"},
			"release_date": {"2000-01-01"},
		}, nil)
		if status != http.StatusOK {
			log.Fatalf("put film %d: status %d", id, status)
		}
	}

	log.Println("Adding likes via film service")
	likes := map[int][]int{
		1: {10},
		2: {10, 20, 30},
		3: {10, 20},
	}
	for userId, filmIds := range likes {
		for _, filmId := range filmIds {
			status := call(http.MethodPut, filmServiceAddress, "/like", url.Values{
				"film_id": {strconv.Itoa(filmId)},
				"user_id": {strconv.Itoa(userId)},
			}, nil)
			if status != http.StatusOK {
				log.Fatalf("add like %d/%d: status %d", userId, filmId, status)
			}
		}
	}

	log.Println("Getting recommendations via recommendation service")
	var recommended []filmmodel.Film
	status := call(http.MethodGet, recommendServiceAddress, "/recommendations", url.Values{
		"user_id": {"1"},
	}, &recommended)
	if status != http.StatusOK {
		log.Fatalf("get recommendations: status %d", status)
	}
	gotIds := make([]int64, 0, len(recommended))
	for _, f := range recommended {
		gotIds = append(gotIds, int64(f.Id))
	}
	sort.Slice(gotIds, func(i, j int) bool { return gotIds[i] < gotIds[j] })
	if diff := cmp.Diff([]int64{20, 30}, gotIds); diff != "" {
		log.Fatalf("recommendations mismatch: %v", diff)
	}

	log.Println("Checking recommendations for an unknown user")
	status = call(http.MethodGet, recommendServiceAddress, "/recommendations", url.Values{
		"user_id": {"99"},
	}, nil)
	if status != http.StatusNotFound {
		log.Fatalf("get recommendations for unknown user: status %d, want %d", status, http.StatusNotFound)
	}

	log.Println("Adding friends via user service")
	status = call(http.MethodPut, userServiceAddress, "/friend", url.Values{
		"user_id":   {"1"},
		"friend_id": {"2"},
	}, nil)
	if status != http.StatusOK {
		log.Fatalf("add friend: status %d", status)
	}
	status = call(http.MethodPut, userServiceAddress, "/friend", url.Values{
		"user_id":   {"1"},
		"friend_id": {"2"},
	}, nil)
	if status != http.StatusConflict {
		log.Fatalf("duplicate add friend: status %d, want %d", status, http.StatusConflict)
	}

	status = call(http.MethodPut, userServiceAddress, "/friend", url.Values{
		"user_id":   {"1"},
		"friend_id": {"3"},
	}, nil)
	if status != http.StatusOK {
		log.Fatalf("add friend: status %d", status)
	}
	status = call(http.MethodPut, userServiceAddress, "/friend", url.Values{
		"user_id":   {"2"},
		"friend_id": {"3"},
	}, nil)
	if status != http.StatusOK {
		log.Fatalf("add friend: status %d", status)
	}

	log.Println("Getting common friends via user service")
	var common []usermodel.User
	status = call(http.MethodGet, userServiceAddress, "/friends/common", url.Values{
		"user_id":  {"1"},
		"other_id": {"2"},
	}, &common)
	if status != http.StatusOK {
		log.Fatalf("get common friends: status %d", status)
	}
	if len(common) != 1 || common[0].Id != 3 {
		log.Fatalf("common friends mismatch: %v", common)
	}

	log.Println("Creating a review via review service")
	status = call(http.MethodPost, reviewServiceAddress, "/review", url.Values{
		"user_id":     {"1"},
		"film_id":     {"20"},
		"is_positive": {"true"},
		"content":     {"Worth watching"},
	}, nil)
	if status != http.StatusOK {
		log.Fatalf("create review: status %d", status)
	}

	log.Println("Checking the activity feed via user service")
	var feed []usermodel.Event
	status = call(http.MethodGet, userServiceAddress, "/feed", url.Values{
		"user_id": {"1"},
	}, &feed)
	if status != http.StatusOK {
		log.Fatalf("get feed: status %d", status)
	}
	wantFeed := []usermodel.Event{
		{UserId: 1, EventType: usermodel.EventTypeLike, Operation: usermodel.OperationAdd, EntityId: 10},
		{UserId: 1, EventType: usermodel.EventTypeFriend, Operation: usermodel.OperationAdd, EntityId: 2},
		{UserId: 1, EventType: usermodel.EventTypeFriend, Operation: usermodel.OperationAdd, EntityId: 3},
		{UserId: 1, EventType: usermodel.EventTypeReview, Operation: usermodel.OperationAdd, EntityId: 1},
	}
	if diff := cmp.Diff(wantFeed, feed, cmpopts.IgnoreFields(usermodel.Event{}, "Timestamp", "EventId")); diff != "" {
		log.Fatalf("feed mismatch: %v", diff)
	}
	for i := 1; i < len(feed); i++ {
		prev, cur := feed[i-1], feed[i]
		if prev.Timestamp > cur.Timestamp {
			log.Fatalf("feed out of order: %v before %v", prev, cur)
		}
		if prev.Timestamp == cur.Timestamp && prev.EventId >= cur.EventId {
			log.Fatalf("feed tiebreak out of order: %v before %v", prev, cur)
		}
	}

	log.Println("Getting top films via film service")
	var top []filmmodel.Film
	status = call(http.MethodGet, filmServiceAddress, "/films/top", url.Values{
		"count": {"1"},
	}, &top)
	if status != http.StatusOK {
		log.Fatalf("get top films: status %d", status)
	}
	if len(top) != 1 || top[0].Id != 10 {
		log.Fatalf("top films mismatch: %v", top)
	}

	log.Println("The integration test completed")
}

func startService(ctx context.Context, registry *memory.Registry, name string, address string, h http.Handler) {
	ln, err := net.Listen("tcp", address)
	if err != nil {
		log.Fatalf("listen %s: %v", address, err)
	}
	go func() {
		if err := http.Serve(ln, h); err != nil {
			panic(err)
		}
	}()
	instanceID := name + "-integration"
	if err := registry.Register(ctx, instanceID, name, address); err != nil {
		log.Fatalf("register %s: %v", name, err)
	}
	go func() {
		for {
			if err := registry.ReportHealthyState(instanceID, name); err != nil {
				log.Printf("report healthy state for %s: %v", name, err)
			}
			time.Sleep(1 * time.Second)
		}
	}()
}

func call(method string, address string, path string, params url.Values, out any) int {
	req, err := http.NewRequest(method, "http://"+address+path+"?"+params.Encode(), nil)
	if err != nil {
		log.Fatalf("new request: %v", err)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		log.Fatalf("%s %s: %v", method, path, err)
	}
	defer resp.Body.Close()
	if out != nil && resp.StatusCode == http.StatusOK {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			log.Fatalf("decode %s response: %v", path, err)
		}
	}
	return resp.StatusCode
}
