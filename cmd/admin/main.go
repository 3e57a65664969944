// Command admin is the operations CLI for the portal. It speaks to the
// running server's REST API; there is no database to reach directly.
package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"

	"github.com/joho/godotenv"
)

type apiClient struct {
	baseURL string
	token   string
	http    *http.Client
}

func newAPIClient() *apiClient {
	baseURL := os.Getenv("PORTAL_URL")
	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}
	return &apiClient{baseURL: baseURL, http: &http.Client{}}
}

func (c *apiClient) login() error {
	memberID := os.Getenv("ADMIN_MEMBER_ID")
	password := os.Getenv("ADMIN_PASSWORD")
	if memberID == "" || password == "" {
		return fmt.Errorf("ADMIN_MEMBER_ID and ADMIN_PASSWORD must be set")
	}

	body, _ := json.Marshal(map[string]string{"member_id": memberID, "password": password})
	resp, err := c.http.Post(c.baseURL+"/api/auth/login", "application/json", bytes.NewReader(body))
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("login failed: %s", resp.Status)
	}

	var payload struct {
		Token string `json:"token"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return err
	}
	c.token = payload.Token
	return nil
}

func (c *apiClient) do(method, path string, body any) ([]byte, error) {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, c.baseURL+path, reader)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%s %s: %s: %s", method, path, resp.Status, data)
	}
	return data, nil
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: Error loading .env file")
	}

	if len(os.Args) < 2 {
		fmt.Println("Usage: admin <command> [args]")
		fmt.Println("Commands: assign, status, priority, approve-sub, reject-sub, export")
		os.Exit(1)
	}

	client := newAPIClient()
	if err := client.login(); err != nil {
		log.Fatalf("Error logging in: %v", err)
	}

	command := os.Args[1]

	switch command {
	case "assign":
		if len(os.Args) < 4 {
			fmt.Println("Usage: admin assign <complaint_id> <staff_name> [expected_date]")
			os.Exit(1)
		}
		body := map[string]string{"staff_name": os.Args[3]}
		if len(os.Args) > 4 {
			body["expected_resolution"] = os.Args[4]
		}
		if _, err := client.do(http.MethodPut, "/api/complaints/"+os.Args[2]+"/assignment", body); err != nil {
			log.Fatalf("Error assigning complaint: %v", err)
		}
		fmt.Printf("Complaint %s assigned to %s.\n", os.Args[2], os.Args[3])

	case "status":
		if len(os.Args) < 4 {
			fmt.Println("Usage: admin status <complaint_id> <status> [note]")
			os.Exit(1)
		}
		body := map[string]string{"status": os.Args[3]}
		if len(os.Args) > 4 {
			body["note"] = os.Args[4]
		}
		if _, err := client.do(http.MethodPut, "/api/complaints/"+os.Args[2]+"/status", body); err != nil {
			log.Fatalf("Error updating status: %v", err)
		}
		fmt.Printf("Complaint %s moved to %s.\n", os.Args[2], os.Args[3])

	case "priority":
		if len(os.Args) != 4 {
			fmt.Println("Usage: admin priority <complaint_id> <priority>")
			os.Exit(1)
		}
		body := map[string]string{"priority": os.Args[3]}
		if _, err := client.do(http.MethodPut, "/api/complaints/"+os.Args[2]+"/priority", body); err != nil {
			log.Fatalf("Error updating priority: %v", err)
		}
		fmt.Printf("Complaint %s set to priority %s.\n", os.Args[2], os.Args[3])

	case "approve-sub":
		if len(os.Args) != 3 {
			fmt.Println("Usage: admin approve-sub <request_id>")
			os.Exit(1)
		}
		body := map[string]any{"approve": true}
		if _, err := client.do(http.MethodPut, "/api/subscriptions/"+os.Args[2]+"/decision", body); err != nil {
			log.Fatalf("Error approving request: %v", err)
		}
		fmt.Printf("Subscription request %s approved.\n", os.Args[2])

	case "reject-sub":
		if len(os.Args) < 4 {
			fmt.Println("Usage: admin reject-sub <request_id> <reason>")
			os.Exit(1)
		}
		body := map[string]any{"approve": false, "reason": os.Args[3]}
		if _, err := client.do(http.MethodPut, "/api/subscriptions/"+os.Args[2]+"/decision", body); err != nil {
			log.Fatalf("Error rejecting request: %v", err)
		}
		fmt.Printf("Subscription request %s rejected.\n", os.Args[2])

	case "export":
		if len(os.Args) < 3 {
			fmt.Println("Usage: admin export <output_file> [status]")
			os.Exit(1)
		}
		path := "/api/admin/complaints/export"
		if len(os.Args) > 3 {
			path += "?status=" + os.Args[3]
		}
		data, err := client.do(http.MethodGet, path, nil)
		if err != nil {
			log.Fatalf("Error exporting complaints: %v", err)
		}
		if err := os.WriteFile(os.Args[2], data, 0o644); err != nil {
			log.Fatalf("Error writing export file: %v", err)
		}
		fmt.Printf("Export written to %s.\n", os.Args[2])

	default:
		fmt.Println("Unknown command")
		os.Exit(1)
	}
}
