// Load generator for the withdrawal endpoint. Fires concurrent withdrawal
// requests for one account and then reads the balance back, so a lost
// update or a negative balance shows up as a mismatch in the final report.
//
// Usage:
//
//	go run script/load-test-withdrawals.go -url http://localhost:8080 \
//	  -token <jwt> -c 10 -n 200 -amount 1.00
package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"
)

type withdrawalPayload struct {
	Amount         string `json:"amount"`
	Method         string `json:"method"`
	AccountDetails string `json:"accountDetails"`
}

type withdrawalResponse struct {
	Success          bool   `json:"success"`
	TransactionID    string `json:"transactionId"`
	WithdrawalAmount string `json:"withdrawalAmount"`
	NewBalance       string `json:"newBalance"`
}

type balanceResponse struct {
	Success       bool   `json:"success"`
	WalletBalance string `json:"walletBalance"`
}

type runStats struct {
	sync.Mutex
	accepted     int
	insufficient int
	failed       int
	totalLatency time.Duration
	maxLatency   time.Duration
	errorCounts  map[string]int
}

func main() {
	baseURL := flag.String("url", "http://localhost:8080", "Base URL for the API")
	token := flag.String("token", "", "Bearer token for the account under test")
	concurrency := flag.Int("c", 10, "Number of concurrent goroutines")
	totalRequests := flag.Int("n", 100, "Total number of withdrawal requests")
	amount := flag.String("amount", "1.00", "Withdrawal amount per request")
	method := flag.String("method", "usdc", "Withdrawal method")
	flag.Parse()

	if *token == "" {
		fmt.Println("a bearer token is required (-token); register and log in first")
		return
	}

	client := &http.Client{Timeout: 10 * time.Second}

	startBalance, err := fetchBalance(client, *baseURL, *token)
	if err != nil {
		fmt.Printf("failed to read starting balance: %v\n", err)
		return
	}
	fmt.Printf("Starting balance: %s\n", startBalance)
	fmt.Printf("Firing %d withdrawals of %s with %d workers\n", *totalRequests, *amount, *concurrency)

	stats := &runStats{errorCounts: make(map[string]int)}
	jobs := make(chan int, *totalRequests)

	var wg sync.WaitGroup
	for i := 0; i < *concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			worker(client, *baseURL, *token, *amount, *method, jobs, stats)
		}()
	}

	started := time.Now()
	for i := 0; i < *totalRequests; i++ {
		jobs <- i
	}
	close(jobs)
	wg.Wait()
	elapsed := time.Since(started)

	endBalance, err := fetchBalance(client, *baseURL, *token)
	if err != nil {
		fmt.Printf("failed to read final balance: %v\n", err)
		return
	}

	printReport(stats, *totalRequests, *amount, startBalance, endBalance, elapsed)
}

func worker(client *http.Client, baseURL, token, amount, method string, jobs <-chan int, stats *runStats) {
	for jobID := range jobs {
		payload := withdrawalPayload{
			Amount:         amount,
			Method:         method,
			AccountDetails: fmt.Sprintf("load-test-%d", jobID),
		}
		body, _ := json.Marshal(payload)

		req, err := http.NewRequest(http.MethodPost, baseURL+"/wallet/withdraw", bytes.NewBuffer(body))
		if err != nil {
			record(stats, 0, 0, err)
			continue
		}
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer "+token)

		started := time.Now()
		resp, err := client.Do(req)
		latency := time.Since(started)
		if err != nil {
			record(stats, 0, latency, err)
			continue
		}
		io.Copy(io.Discard, resp.Body)
		resp.Body.Close()
		record(stats, resp.StatusCode, latency, nil)
	}
}

func record(stats *runStats, statusCode int, latency time.Duration, err error) {
	stats.Lock()
	defer stats.Unlock()

	stats.totalLatency += latency
	if latency > stats.maxLatency {
		stats.maxLatency = latency
	}

	switch {
	case err != nil:
		stats.failed++
		stats.errorCounts[err.Error()]++
	case statusCode == http.StatusCreated:
		stats.accepted++
	case statusCode == http.StatusUnprocessableEntity:
		// Expected once the balance runs out
		stats.insufficient++
	default:
		stats.failed++
		stats.errorCounts[fmt.Sprintf("HTTP %d", statusCode)]++
	}
}

func fetchBalance(client *http.Client, baseURL, token string) (string, error) {
	req, err := http.NewRequest(http.MethodGet, baseURL+"/wallet/balance", nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("HTTP %d from balance endpoint", resp.StatusCode)
	}

	var parsed balanceResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", err
	}
	return parsed.WalletBalance, nil
}

func printReport(stats *runStats, total int, amount, startBalance, endBalance string, elapsed time.Duration) {
	completed := stats.accepted + stats.insufficient + stats.failed
	var avgLatency time.Duration
	if completed > 0 {
		avgLatency = stats.totalLatency / time.Duration(completed)
	}

	fmt.Println("\n================= RESULTS =================")
	fmt.Printf("Requests:            %d in %.2fs (%.1f req/s)\n", total, elapsed.Seconds(), float64(total)/elapsed.Seconds())
	fmt.Printf("Accepted:            %d\n", stats.accepted)
	fmt.Printf("Insufficient:        %d\n", stats.insufficient)
	fmt.Printf("Failed:              %d\n", stats.failed)
	fmt.Printf("Avg latency:         %v\n", avgLatency)
	fmt.Printf("Max latency:         %v\n", stats.maxLatency)

	if stats.failed > 0 {
		fmt.Println("\n----------------- ERRORS -----------------")
		for msg, count := range stats.errorCounts {
			fmt.Printf("%-40s: %d\n", msg, count)
		}
	}

	fmt.Println("\n----------------- LEDGER CHECK -----------------")
	fmt.Printf("Starting balance:    %s\n", startBalance)
	fmt.Printf("Final balance:       %s\n", endBalance)
	fmt.Printf("Accepted x amount:   %d x %s\n", stats.accepted, amount)
	fmt.Println("Final balance must equal starting balance minus accepted withdrawals,")
	fmt.Println("and must never be negative. Anything else is a lost update.")
}
