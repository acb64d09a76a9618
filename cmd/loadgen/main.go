// loadgen places random checkouts against a running shop and polls their tracking pages.
package main

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"net/http"
	"os/signal"
	"sync"
	"syscall"
	"time"
)

var products = []string{
	"chanel-no5-100",
	"dior-sauvage-100",
	"ysl-libre-90",
	"armani-acqua-75",
	"lancome-idole-50",
	"tom-ford-oud-50",
}

var methods = []string{"mpesa", "emola", "card", "cash_on_delivery"}

type cartItem struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

type customer struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

type checkoutRequest struct {
	Customer      customer   `json:"customer"`
	Items         []cartItem `json:"items"`
	PaymentMethod string     `json:"payment_method"`
}

type checkoutResponse struct {
	TrackingID string `json:"tracking_id"`
}

func randomCheckout() checkoutRequest {
	items := make([]cartItem, 0, 3)
	for range rand.Intn(3) + 1 {
		items = append(items, cartItem{
			ProductID: products[rand.Intn(len(products))],
			Quantity:  rand.Intn(2) + 1,
		})
	}

	return checkoutRequest{
		Customer: customer{
			Name:    fmt.Sprintf("Customer %d", rand.Intn(1000)),
			Phone:   fmt.Sprintf("8%d%07d", rand.Intn(6)+2, rand.Intn(10000000)),
			Address: fmt.Sprintf("Av. 24 de Julho %d, Maputo", rand.Intn(2000)),
		},
		Items:         items,
		PaymentMethod: methods[rand.Intn(len(methods))],
	}
}

type client struct {
	baseURL string
	http    *http.Client

	mu      sync.Mutex
	tracked []string
}

func (c *client) checkout(ctx context.Context) {
	body, _ := json.Marshal(randomCheckout())

	req, _ := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/orders", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		log.Println("checkout failed:", err)
		return
	}
	defer resp.Body.Close()

	log.Println("POST /orders ->", resp.Status)
	if resp.StatusCode != http.StatusCreated {
		return
	}

	var out checkoutResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err == nil {
		c.mu.Lock()
		c.tracked = append(c.tracked, out.TrackingID)
		c.mu.Unlock()
	}
}

func (c *client) track(ctx context.Context) {
	c.mu.Lock()
	if len(c.tracked) == 0 {
		c.mu.Unlock()
		return
	}
	id := c.tracked[rand.Intn(len(c.tracked))]
	c.mu.Unlock()

	// иногда спрашиваем несуществующий заказ
	if rand.Intn(5) == 0 {
		id = "PF-UNKNOWN"
	}

	req, _ := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/orders/track/"+id, nil)
	resp, err := c.http.Do(req)
	if err != nil {
		log.Println("track failed:", err)
		return
	}
	resp.Body.Close()
	log.Println("GET /orders/track/"+id, "->", resp.Status)
}

func main() {
	baseURL := flag.String("url", "http://localhost:8080", "shop base url")
	interval := flag.Duration("interval", 2*time.Second, "delay between checkout batches")
	flag.Parse()

	c := &client{baseURL: *baseURL, http: &http.Client{Timeout: 30 * time.Second}}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	ticker := time.NewTicker(*interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			var wg sync.WaitGroup
			for range rand.Intn(5) + 1 {
				wg.Go(func() { c.checkout(ctx) })
			}
			for range rand.Intn(10) {
				wg.Go(func() { c.track(ctx) })
			}
			wg.Wait()
		case <-ctx.Done():
			return
		}
	}
}
