// Copyright © 2021 - 2023 SUSE LLC
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//     http://www.apache.org/licenses/LICENSE-2.0
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package token_test

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"time"

	"github.com/go-logr/logr/funcr"
	"github.com/pkg/errors"

	"github.com/xcalibyte/get-token/internal/token"
	"github.com/xcalibyte/get-token/internal/token/tokenfakes"
	"github.com/xcalibyte/get-token/pkg/api/auth/v2/client"
	"github.com/xcalibyte/get-token/pkg/api/auth/v2/models"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Fetcher", func() {

	const delay = 10 * time.Millisecond

	var (
		fakeAPI  *tokenfakes.FakeLoginAPI
		fetcher  *token.Fetcher
		notified []uint
		creds    token.Credentials
	)

	serverError := &client.APIError{StatusCode: http.StatusServiceUnavailable, Body: []byte("maintenance")}

	BeforeEach(func() {
		fakeAPI = &tokenfakes.FakeLoginAPI{}
		notified = []uint{}
		creds = token.Credentials{BaseURL: "http://127.0.0.1:80", Username: "admin", Password: "secret"}

		fetcher = token.New(fakeAPI,
			token.WithDelay(delay),
			token.WithRetryNotify(func(attempt uint, err *token.Error) {
				Expect(err.Kind).To(Equal(token.ServerError))
				notified = append(notified, attempt)
			}),
		)
	})

	When("the server returns a token", func() {
		It("returns it after a single attempt", func() {
			fakeAPI.LoginReturns(models.LoginResponse{AccessToken: "abc123"}, nil)

			result, err := fetcher.Fetch(context.Background(), creds)
			Expect(err).ToNot(HaveOccurred())
			Expect(result.Token).To(Equal("abc123"))
			Expect(result.Attempts).To(Equal(1))
			Expect(fakeAPI.LoginCallCount()).To(Equal(1))
		})

		It("sends the credentials", func() {
			fakeAPI.LoginReturns(models.LoginResponse{AccessToken: "abc123"}, nil)

			_, err := fetcher.Fetch(context.Background(), creds)
			Expect(err).ToNot(HaveOccurred())

			_, request := fakeAPI.LoginArgsForCall(0)
			Expect(request).To(Equal(models.LoginRequest{Username: "admin", Password: "secret"}))
		})
	})

	When("the server returns no token", func() {
		It("returns an empty token without error", func() {
			fakeAPI.LoginReturns(models.LoginResponse{}, nil)

			result, err := fetcher.Fetch(context.Background(), creds)
			Expect(err).ToNot(HaveOccurred())
			Expect(result.Token).To(BeEmpty())
		})
	})

	When("the server returns a client error", func() {
		It("fails at once without retrying", func() {
			fakeAPI.LoginReturns(models.LoginResponse{},
				&client.APIError{StatusCode: http.StatusNotFound, Body: []byte("no such page")})

			_, err := fetcher.Fetch(context.Background(), creds)
			Expect(err).To(HaveOccurred())

			var fetchErr *token.Error
			Expect(errors.As(err, &fetchErr)).To(BeTrue())
			Expect(fetchErr.Kind).To(Equal(token.ClientError))
			Expect(fetchErr.StatusCode).To(Equal(http.StatusNotFound))
			Expect(string(fetchErr.Body)).To(Equal("no such page"))

			Expect(fakeAPI.LoginCallCount()).To(Equal(1))
			Expect(notified).To(BeEmpty())
		})
	})

	When("the server keeps returning server errors", func() {
		It("gives up after five attempts", func() {
			fakeAPI.LoginReturns(models.LoginResponse{}, serverError)

			start := time.Now()
			result, err := fetcher.Fetch(context.Background(), creds)
			elapsed := time.Since(start)

			Expect(err).To(HaveOccurred())
			var fetchErr *token.Error
			Expect(errors.As(err, &fetchErr)).To(BeTrue())
			Expect(fetchErr.Kind).To(Equal(token.RetriesExhausted))
			Expect(fetchErr.StatusCode).To(Equal(http.StatusServiceUnavailable))
			Expect(fetchErr.Attempts).To(Equal(5))

			Expect(result.Token).To(BeEmpty())
			Expect(result.Attempts).To(Equal(5))
			Expect(fakeAPI.LoginCallCount()).To(Equal(5))
			Expect(notified).To(Equal([]uint{1, 2, 3, 4, 5}))

			// no wait after the last attempt
			Expect(elapsed).To(BeNumerically(">=", 4*delay))
		})

		It("honours the configured number of attempts", func() {
			fakeAPI.LoginReturns(models.LoginResponse{}, serverError)

			fetcher = token.New(fakeAPI, token.WithDelay(time.Millisecond), token.WithAttempts(2))
			_, err := fetcher.Fetch(context.Background(), creds)
			Expect(err).To(HaveOccurred())
			Expect(fakeAPI.LoginCallCount()).To(Equal(2))
		})

		It("makes at least one attempt", func() {
			fakeAPI.LoginReturns(models.LoginResponse{AccessToken: "abc123"}, nil)

			fetcher = token.New(fakeAPI, token.WithDelay(time.Millisecond), token.WithAttempts(0))
			result, err := fetcher.Fetch(context.Background(), creds)
			Expect(err).ToNot(HaveOccurred())
			Expect(result.Token).To(Equal("abc123"))
		})
	})

	When("the server recovers from server errors", func() {
		It("returns the token of the first successful attempt", func() {
			fakeAPI.LoginReturnsOnCall(0, models.LoginResponse{}, serverError)
			fakeAPI.LoginReturnsOnCall(1, models.LoginResponse{}, serverError)
			fakeAPI.LoginReturnsOnCall(2, models.LoginResponse{AccessToken: "xyz"}, nil)

			result, err := fetcher.Fetch(context.Background(), creds)
			Expect(err).ToNot(HaveOccurred())
			Expect(result.Token).To(Equal("xyz"))
			Expect(result.Attempts).To(Equal(3))
			Expect(fakeAPI.LoginCallCount()).To(Equal(3))
			Expect(notified).To(Equal([]uint{1, 2}))
		})
	})

	When("the server cannot be reached", func() {
		It("fails at once without retrying", func() {
			fakeAPI.LoginReturns(models.LoginResponse{},
				&client.ConnectionError{URL: "http://127.0.0.1:1", Err: errors.New("connection refused")})

			_, err := fetcher.Fetch(context.Background(), creds)
			Expect(err).To(HaveOccurred())

			var fetchErr *token.Error
			Expect(errors.As(err, &fetchErr)).To(BeTrue())
			Expect(fetchErr.Kind).To(Equal(token.Unreachable))
			Expect(fetchErr.Error()).To(ContainSubstring("connection refused"))
			Expect(fakeAPI.LoginCallCount()).To(Equal(1))
		})
	})

	When("the response cannot be decoded", func() {
		It("reports an invalid response", func() {
			fakeAPI.LoginReturns(models.LoginResponse{}, errors.New("decoding JSON response"))

			_, err := fetcher.Fetch(context.Background(), creds)
			Expect(err).To(HaveOccurred())

			var fetchErr *token.Error
			Expect(errors.As(err, &fetchErr)).To(BeTrue())
			Expect(fetchErr.Kind).To(Equal(token.InvalidResponse))
			Expect(fakeAPI.LoginCallCount()).To(Equal(1))
		})
	})

	When("a logger is given", func() {
		It("logs the attempts through it", func() {
			var logged []string
			log := funcr.New(func(prefix, args string) {
				logged = append(logged, prefix+" "+args)
			}, funcr.Options{Verbosity: 1})

			fetcher = token.New(fakeAPI, token.WithDelay(delay), token.WithLogger(log.WithName("TokenFetcher")))
			fakeAPI.LoginReturns(models.LoginResponse{AccessToken: "abc123"}, nil)

			_, err := fetcher.Fetch(context.Background(), creds)
			Expect(err).ToNot(HaveOccurred())

			Expect(logged).ToNot(BeEmpty())
			Expect(logged[0]).To(ContainSubstring("TokenFetcher/Fetch"))
			Expect(logged[0]).To(ContainSubstring(`"user"="admin"`))
			for _, line := range logged {
				Expect(line).ToNot(ContainSubstring("secret"))
			}
		})
	})

	When("the context is cancelled while waiting", func() {
		It("stops retrying", func() {
			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()

			fakeAPI.LoginStub = func(context.Context, models.LoginRequest) (models.LoginResponse, error) {
				cancel()
				return models.LoginResponse{}, serverError
			}

			fetcher = token.New(fakeAPI, token.WithDelay(time.Minute))
			_, err := fetcher.Fetch(ctx, creds)
			Expect(err).To(HaveOccurred())
			Expect(errors.Is(err, context.Canceled)).To(BeTrue())
			Expect(fakeAPI.LoginCallCount()).To(Equal(1))
		})
	})
})

var _ = Describe("Fetcher against a login server", func() {

	var (
		srv      *httptest.Server
		requests atomic.Int32
		statuses []int
		body     string
	)

	BeforeEach(func() {
		requests.Store(0)
		statuses = []int{http.StatusOK}
		body = `{"accessToken":"abc123"}`

		srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer GinkgoRecover()

			n := int(requests.Add(1)) - 1
			status := statuses[len(statuses)-1]
			if n < len(statuses) {
				status = statuses[n]
			}

			w.WriteHeader(status)
			fmt.Fprint(w, body)
		}))
	})

	AfterEach(func() {
		srv.Close()
	})

	It("re-issues the request for every attempt", func() {
		statuses = []int{http.StatusBadGateway, http.StatusInternalServerError, http.StatusOK}
		body = `{"accessToken":"xyz"}`

		fetcher := token.NewForURL(context.Background(), srv.URL, token.WithDelay(time.Millisecond))
		result, err := fetcher.Fetch(context.Background(), token.Credentials{Username: "u", Password: "p"})
		Expect(err).ToNot(HaveOccurred())
		Expect(result.Token).To(Equal("xyz"))
		Expect(requests.Load()).To(BeEquivalentTo(3))
	})

	It("never sends a sixth request", func() {
		statuses = []int{http.StatusServiceUnavailable}

		fetcher := token.NewForURL(context.Background(), srv.URL, token.WithDelay(time.Millisecond))
		_, err := fetcher.Fetch(context.Background(), token.Credentials{Username: "u", Password: "p"})
		Expect(err).To(HaveOccurred())
		Expect(requests.Load()).To(BeEquivalentTo(5))
	})

	It("reports connection refused as unreachable", func() {
		listener, err := net.Listen("tcp", "127.0.0.1:0")
		Expect(err).ToNot(HaveOccurred())
		address := listener.Addr().String()
		Expect(listener.Close()).To(Succeed())

		fetcher := token.NewForURL(context.Background(), "http://"+address, token.WithDelay(time.Millisecond))
		_, err = fetcher.Fetch(context.Background(), token.Credentials{Username: "u", Password: "p"})

		var fetchErr *token.Error
		Expect(errors.As(err, &fetchErr)).To(BeTrue())
		Expect(fetchErr.Kind).To(Equal(token.Unreachable))
		Expect(fetchErr.Attempts).To(Equal(1))
	})
})
