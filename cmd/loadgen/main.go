package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"net/http"
	"sync"
	"sync/atomic"
	"time"
)

type orderRequest struct {
	StudentName string `json:"studentName"`
	Stall       string `json:"stall"`
	Item        string `json:"item"`
	Quantity    int    `json:"quantity"`
}

type orderResponse struct {
	ID        string    `json:"id"`
	OrderTime time.Time `json:"orderTime"`
}

func main() {
	baseURL := flag.String("addr", "http://localhost:8080", "server base URL")
	totalRequests := flag.Int("n", 50, "number of orders to submit")
	flag.Parse()

	client := &http.Client{Timeout: 5 * time.Second}

	before, err := orderCount(client, *baseURL)
	if err != nil {
		log.Fatalf("list orders before run: %v", err)
	}

	var successCount atomic.Int32
	var failCount atomic.Int32
	var idMu sync.Mutex
	ids := make(map[string]bool)

	var wg sync.WaitGroup
	start := time.Now()

	for i := 0; i < *totalRequests; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()

			body, _ := json.Marshal(orderRequest{
				StudentName: fmt.Sprintf("student-%d", n),
				Stall:       "Fresh Juice Bar",
				Item:        "Mango Juice",
				Quantity:    1,
			})

			resp, err := client.Post(*baseURL+"/api/orders", "application/json", bytes.NewReader(body))
			if err != nil {
				failCount.Add(1)
				return
			}
			defer resp.Body.Close()

			if resp.StatusCode != http.StatusCreated {
				failCount.Add(1)
				return
			}

			var order orderResponse
			if err := json.NewDecoder(resp.Body).Decode(&order); err != nil || order.ID == "" {
				failCount.Add(1)
				return
			}

			idMu.Lock()
			ids[order.ID] = true
			idMu.Unlock()
			successCount.Add(1)
		}(i)
	}

	wg.Wait()
	elapsed := time.Since(start)

	after, err := orderCount(client, *baseURL)
	if err != nil {
		log.Fatalf("list orders after run: %v", err)
	}

	success := successCount.Load()
	fail := failCount.Load()

	fmt.Println("========== LOAD TEST RESULTS ==========")
	fmt.Printf("Total Requests:   %d\n", *totalRequests)
	fmt.Printf("Successful:       %d\n", success)
	fmt.Printf("Failed:           %d\n", fail)
	fmt.Printf("Duration:         %v\n", elapsed)
	fmt.Println("=======================================")

	if int(success) == *totalRequests && len(ids) == *totalRequests {
		fmt.Printf("PASS: %d orders created with distinct ids\n", success)
	} else {
		fmt.Printf("FAIL: expected %d distinct orders, got %d successes and %d distinct ids\n",
			*totalRequests, success, len(ids))
	}

	if after-before == int(success) {
		fmt.Printf("PASS: order count grew by %d\n", after-before)
	} else {
		fmt.Printf("FAIL: order count grew by %d, expected %d\n", after-before, success)
	}
}

func orderCount(client *http.Client, baseURL string) (int, error) {
	resp, err := client.Get(baseURL + "/api/orders")
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	var orders []json.RawMessage
	if err := json.NewDecoder(resp.Body).Decode(&orders); err != nil {
		return 0, err
	}
	return len(orders), nil
}
