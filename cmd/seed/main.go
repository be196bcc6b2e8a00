package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/brianvoe/gofakeit/v6"
)

// Development seeder. Drives the running API end to end: registers
// photographers, submits content, files homepage requests and suggestions,
// then logs in as the admin and decides a few of them.

var baseURL = "http://localhost:8080"

func main() {
	gofakeit.Seed(time.Now().UnixNano())
	if v := os.Getenv("SEED_BASE_URL"); v != "" {
		baseURL = v
	}

	adminToken := login(os.Getenv("ADMIN_EMAIL"), os.Getenv("ADMIN_PASSWORD"))
	if adminToken == "" {
		adminToken = login("admin@photomarket.local", "admin")
	}
	if adminToken == "" {
		log.Fatal("could not log in as admin, aborting")
	}

	for _, name := range []string{"Weddings", "Portraits", "Travel", "Products"} {
		post(adminToken, "/taxonomy/categories/create", map[string]any{"name": name})
	}
	post(adminToken, "/taxonomy/cities/create", map[string]any{"name": "Mumbai", "region": "Maharashtra"})
	post(adminToken, "/taxonomy/cities/create", map[string]any{"name": "Bengaluru", "region": "Karnataka"})

	for i := 0; i < 5; i++ {
		email := gofakeit.Email()
		token := register(email, "123456", gofakeit.Name())
		if token == "" {
			continue
		}

		post(token, "/photographers/profile/update", map[string]any{
			"bio":        gofakeit.Sentence(12),
			"city":       "Mumbai",
			"categories": "Weddings",
		})

		galleryID := create(token, "/galleries/create", map[string]any{
			"title":       gofakeit.Sentence(3),
			"description": gofakeit.Sentence(15),
			"category":    "Weddings",
			"city":        "Mumbai",
			"cover_url":   gofakeit.ImageURL(640, 480),
		})
		create(token, "/stories/create", map[string]any{
			"title":      gofakeit.Sentence(4),
			"body":       gofakeit.Paragraph(2, 4, 12, " "),
			"gallery_id": galleryID,
		})

		if galleryID != "" {
			post(token, "/galleries/request-homepage", map[string]any{"id": galleryID})
			// admin approves some requests and rejects the rest
			action := "approve"
			if i%3 == 2 {
				action = "reject"
			}
			post(adminToken, "/admin/content/decide", map[string]any{
				"id":       galleryID,
				"action":   action,
				"homepage": action == "approve",
			})
		}

		post(token, "/taxonomy/suggest", map[string]any{
			"kind":   "city",
			"name":   gofakeit.City(),
			"region": gofakeit.State(),
		})
	}

	log.Println("seeding complete")
}

func register(email, password, name string) string {
	var out struct {
		Token string `json:"token"`
	}
	if err := call(http.MethodPost, "/auth/register", "", map[string]any{
		"email": email, "password": password, "name": name,
	}, &out); err != nil {
		log.Printf("register %s: %v", email, err)
		return ""
	}
	return out.Token
}

func login(email, password string) string {
	var out struct {
		Token string `json:"token"`
	}
	if err := call(http.MethodPost, "/auth/login", "", map[string]any{
		"email": email, "password": password,
	}, &out); err != nil {
		log.Printf("login %s: %v", email, err)
		return ""
	}
	return out.Token
}

func create(token, path string, payload map[string]any) string {
	var out struct {
		ID string `json:"id"`
	}
	if err := call(http.MethodPost, path, token, payload, &out); err != nil {
		log.Printf("POST %s: %v", path, err)
		return ""
	}
	return out.ID
}

func post(token, path string, payload map[string]any) {
	if err := call(http.MethodPost, path, token, payload, nil); err != nil {
		log.Printf("POST %s: %v", path, err)
	}
}

func call(method, path, token string, payload map[string]any, out any) error {
	b, _ := json.Marshal(payload)
	req, err := http.NewRequest(method, baseURL+path, bytes.NewReader(b))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		return fmt.Errorf("status %d", resp.StatusCode)
	}
	if out != nil {
		return json.NewDecoder(resp.Body).Decode(out)
	}
	return nil
}
