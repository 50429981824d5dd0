// Command seed pushes demo judge sessions and score submissions at a
// running dashboard, for local smoke testing.
package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"math/rand"
	"net/http"
	"net/http/cookiejar"
	"os"
	"time"

	"github.com/google/uuid"
)

type scorePayload struct {
	ProblemRelevance     int    `json:"problemRelevance"`
	TechnicalFeasibility int    `json:"technicalFeasibility"`
	StatementAlignment   int    `json:"statementAlignment"`
	Creativity           int    `json:"creativity"`
	Presentation         int    `json:"presentation"`
	PlatformUse          int    `json:"platformUse"`
	Notes                string `json:"notes,omitempty"`
}

func main() {
	baseURL := flag.String("url", "http://localhost:8090", "dashboard base URL")
	judges := flag.Int("judges", 3, "number of demo judges")
	seed := flag.Int64("seed", 42, "random seed for deterministic scores")
	flag.Parse()

	rng := rand.New(rand.NewSource(*seed))

	teams, err := fetchTeams(*baseURL)
	if err != nil {
		fmt.Fprintln(os.Stderr, "fetch teams:", err)
		os.Exit(1)
	}
	fmt.Printf("seeding %d judges across %d teams\n", *judges, len(teams))

	for j := 0; j < *judges; j++ {
		email := fmt.Sprintf("judge-%s@example.com", uuid.NewString()[:8])
		client, err := login(*baseURL, email, fmt.Sprintf("Demo Judge %d", j+1))
		if err != nil {
			fmt.Fprintln(os.Stderr, "login:", err)
			os.Exit(1)
		}
		for _, teamID := range teams {
			if err := submit(client, *baseURL, teamID, randomScores(rng)); err != nil {
				fmt.Fprintln(os.Stderr, "submit:", err)
				os.Exit(1)
			}
		}
		fmt.Printf("  %s scored %d teams\n", email, len(teams))
	}
}

func fetchTeams(baseURL string) ([]string, error) {
	resp, err := http.Get(baseURL + "/teams")
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("GET /teams: %s", resp.Status)
	}

	var teams []struct {
		ID string `json:"id"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&teams); err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(teams))
	for _, t := range teams {
		ids = append(ids, t.ID)
	}
	return ids, nil
}

// login opens a session and returns a client carrying the cookie.
func login(baseURL, email, name string) (*http.Client, error) {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, err
	}
	client := &http.Client{Jar: jar, Timeout: 10 * time.Second}

	body, _ := json.Marshal(map[string]string{"email": email, "name": name})
	resp, err := client.Post(baseURL+"/session", "application/json", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("POST /session: %s", resp.Status)
	}
	return client, nil
}

func submit(client *http.Client, baseURL, teamID string, scores scorePayload) error {
	body, _ := json.Marshal(map[string]any{"teamId": teamID, "scores": scores})
	resp, err := client.Post(baseURL+"/scores", "application/json", bytes.NewReader(body))
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("POST /scores for %s: %s", teamID, resp.Status)
	}
	return nil
}

func randomScores(rng *rand.Rand) scorePayload {
	sub := func() int { return rng.Intn(16) }
	return scorePayload{
		ProblemRelevance:     sub(),
		TechnicalFeasibility: sub(),
		StatementAlignment:   sub(),
		Creativity:           sub(),
		Presentation:         sub(),
		PlatformUse:          sub(),
	}
}
