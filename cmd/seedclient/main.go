package main

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"os"
	"strconv"
)

const (
	userServiceAddress = "localhost:8081"
	filmServiceAddress = "localhost:8082"
)

// fixture defines the seed file layout: users and films to store, plus
// the like and friendship edges between them.
type fixture struct {
	Users []struct {
		Id       int64  `json:"id"`
		Email    string `json:"email"`
		Login    string `json:"login"`
		Name     string `json:"name"`
		Birthday string `json:"birthday"`
	} `json:"users"`
	Films []struct {
		Id          int64  `json:"id"`
		Name        string `json:"name"`
		Description string `json:"description"`
		Duration    int    `json:"duration"`
		ReleaseDate string `json:"releaseDate"`
	} `json:"films"`
	Likes []struct {
		UserId int64 `json:"userId"`
		FilmId int64 `json:"filmId"`
	} `json:"likes"`
	Friendships []struct {
		UserId   int64 `json:"userId"`
		FriendId int64 `json:"friendId"`
	} `json:"friendships"`
}

func main() {
	filePath := "seed.json"
	if len(os.Args) > 1 {
		filePath = os.Args[1]
	}
	if err := seed(filePath); err != nil {
		log.Fatalf("Failed to seed: %v", err)
	}
}

func seed(filePath string) error {
	f, err := os.Open(filePath)
	if err != nil {
		return fmt.Errorf("failed to open file: %w", err)
	}
	defer f.Close()
	var fix fixture
	if err := json.NewDecoder(f).Decode(&fix); err != nil {
		return fmt.Errorf("failed to decode fixture: %w", err)
	}

	for _, u := range fix.Users {
		if err := put(userServiceAddress, "/user", url.Values{
			"id":       {strconv.FormatInt(u.Id, 10)},
			"email":    {u.Email},
			"login":    {u.Login},
			"name":     {u.Name},
			"birthday": {u.Birthday},
		}); err != nil {
			return fmt.Errorf("failed to seed user %d: %w", u.Id, err)
		}
	}
	log.Printf("Seeded %d users", len(fix.Users))

	for _, f := range fix.Films {
		if err := put(filmServiceAddress, "/film", url.Values{
			"id":           {strconv.FormatInt(f.Id, 10)},
			"name":         {f.Name},
			"description":  {f.Description},
			"duration":     {strconv.Itoa(f.Duration)},
			"release_date": {f.ReleaseDate},
		}); err != nil {
			return fmt.Errorf("failed to seed film %d: %w", f.Id, err)
		}
	}
	log.Printf("Seeded %d films", len(fix.Films))

	for _, l := range fix.Likes {
		if err := put(filmServiceAddress, "/like", url.Values{
			"film_id": {strconv.FormatInt(l.FilmId, 10)},
			"user_id": {strconv.FormatInt(l.UserId, 10)},
		}); err != nil {
			return fmt.Errorf("failed to seed like %d/%d: %w", l.UserId, l.FilmId, err)
		}
	}
	log.Printf("Seeded %d likes", len(fix.Likes))

	for _, fr := range fix.Friendships {
		if err := put(userServiceAddress, "/friend", url.Values{
			"user_id":   {strconv.FormatInt(fr.UserId, 10)},
			"friend_id": {strconv.FormatInt(fr.FriendId, 10)},
		}); err != nil {
			return fmt.Errorf("failed to seed friendship %d/%d: %w", fr.UserId, fr.FriendId, err)
		}
	}
	log.Printf("Seeded %d friendships", len(fix.Friendships))
	return nil
}

func put(address string, path string, params url.Values) error {
	req, err := http.NewRequest(http.MethodPut, "http://"+address+path+"?"+params.Encode(), nil)
	if err != nil {
		return err
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("status %d", resp.StatusCode)
	}
	return nil
}
