package integration

import (
	"context"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"taste-heaven/internal/cart"
	"taste-heaven/internal/checkout"
	"taste-heaven/internal/client"
	"taste-heaven/internal/localstore"
	"taste-heaven/internal/metrics"
	"taste-heaven/internal/model"
	"taste-heaven/internal/repository"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAPI_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	drivers := []struct {
		name  string
		setup func(t *testing.T) repository.Stores
	}{
		{name: "mongo", setup: SetupMongo},
		{name: "postgres", setup: SetupPostgres},
	}

	for _, d := range drivers {
		t.Run(d.name, func(t *testing.T) {
			stores := d.setup(t)
			SeedMenu(t, stores.Products)
			m := metrics.New()
			srv := NewTestServer(t, stores, m)
			api := client.New(srv.URL+"/api", client.WithAPIKey(TestAPIKey))
			ctx := context.Background()

			t.Run("signup then duplicate email", func(t *testing.T) {
				msg, err := api.Signup(ctx, model.SignupRequest{Name: "Alice", Email: "a@x.com", Password: "pw123"})
				require.NoError(t, err)
				assert.Equal(t, "Account created", msg)

				_, err = api.Signup(ctx, model.SignupRequest{Name: "Alice2", Email: "a@x.com", Password: "pw456"})
				var apiErr *client.APIError
				require.ErrorAs(t, err, &apiErr)
				assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
				assert.Equal(t, "Email already registered", apiErr.Message)
			})

			t.Run("login", func(t *testing.T) {
				user, err := api.Login(ctx, model.LoginRequest{Email: "a@x.com", Password: "pw123"})
				require.NoError(t, err)
				assert.Equal(t, &model.UserProfile{Name: "Alice", Email: "a@x.com"}, user)

				_, err = api.Login(ctx, model.LoginRequest{Email: "a@x.com", Password: "wrong"})
				assert.Equal(t, "Invalid credentials", client.UserMessage(err))

				_, err = api.Login(ctx, model.LoginRequest{Email: "ghost@x.com", Password: "pw123"})
				assert.Equal(t, "Invalid credentials", client.UserMessage(err))
			})

			t.Run("products in insertion order", func(t *testing.T) {
				products, err := api.Products(ctx)
				require.NoError(t, err)
				require.Len(t, products, 3)
				assert.Equal(t, "Paneer Tikka", products[0].Name)
				assert.Equal(t, "Butter Naan", products[2].Name)
				assert.NotEmpty(t, products[0].ID)
			})

			t.Run("orders round trip newest first", func(t *testing.T) {
				_, err := api.CreateOrder(ctx, model.OrderRequest{
					UserEmail:    "b@x.com",
					Items:        []model.OrderItem{{Name: "Naan", Price: 40, Qty: 2}},
					Total:        110,
					DeliveryType: model.DeliveryHome,
					Phone:        "999",
					Address:      "Street 1",
				})
				require.NoError(t, err)

				orders, err := api.Orders(ctx, "b@x.com")
				require.NoError(t, err)
				require.Len(t, orders, 1)
				assert.Equal(t, 110.0, orders[0].Total)
				assert.Equal(t, []model.OrderItem{{Name: "Naan", Price: 40, Qty: 2}}, orders[0].Items)
				assert.Equal(t, model.DeliveryHome, orders[0].DeliveryType)
				assert.Equal(t, "Street 1", orders[0].Address)

				time.Sleep(10 * time.Millisecond)
				_, err = api.CreateOrder(ctx, model.OrderRequest{
					UserEmail: "b@x.com",
					Items:     []model.OrderItem{{Name: "Dal Tadka", Price: 160}},
					Total:     160,
				})
				require.NoError(t, err)

				orders, err = api.Orders(ctx, "b@x.com")
				require.NoError(t, err)
				require.Len(t, orders, 2)
				assert.Equal(t, 160.0, orders[0].Total)
				assert.Equal(t, 1, orders[0].Items[0].Qty, "missing qty defaults to one")
				assert.Equal(t, 110.0, orders[1].Total)
			})

			t.Run("invalid order", func(t *testing.T) {
				_, err := api.CreateOrder(ctx, model.OrderRequest{UserEmail: "nobody@x.com", Items: []model.OrderItem{}, Total: 0})
				assert.Equal(t, "Invalid order data", client.UserMessage(err))

				orders, err := api.Orders(ctx, "nobody@x.com")
				require.NoError(t, err)
				assert.Empty(t, orders)
			})

			t.Run("contact", func(t *testing.T) {
				msg, err := api.Contact(ctx, model.InquiryRequest{Name: "Alice", Email: "a@x.com", Message: "Lovely food"})
				require.NoError(t, err)
				assert.NotEmpty(t, msg)

				_, err = api.Contact(ctx, model.InquiryRequest{Name: "Alice", Email: "a@x.com"})
				assert.Error(t, err)
			})

			t.Run("checkout from the client", func(t *testing.T) {
				store, err := localstore.Open(t.TempDir())
				require.NoError(t, err)
				session := checkout.NewSession(store)

				user, err := api.Login(ctx, model.LoginRequest{Email: "a@x.com", Password: "pw123"})
				require.NoError(t, err)
				require.NoError(t, session.SignIn(*user))

				products, err := api.Products(ctx)
				require.NoError(t, err)
				carts, err := cart.NewController(cart.NewLocalStorage(store, zerolog.Nop()))
				require.NoError(t, err)
				require.NoError(t, carts.Add(cart.ItemFromProduct(products[0])))
				require.NoError(t, carts.Add(cart.ItemFromProduct(products[2])))
				require.NoError(t, carts.SetQuantity(1, 3))

				prompter := &linePrompter{answers: []string{"1", "98765", "7 Curry Lane"}}
				notifier := &lineNotifier{}
				o := checkout.New(session, carts, api, prompter, notifier, checkout.Options{}, zerolog.Nop())

				result, err := o.Run(ctx)
				require.NoError(t, err)
				assert.True(t, result.Cart.IsEmpty())
				assert.Equal(t, []string{checkout.MsgHomeDelivered}, notifier.messages)

				orders, err := api.Orders(ctx, "a@x.com")
				require.NoError(t, err)
				require.Len(t, orders, 1)
				assert.Equal(t, 330.0, orders[0].Total)
				assert.Equal(t, "98765", orders[0].Phone)

				reopened, err := cart.NewController(cart.NewLocalStorage(store, zerolog.Nop()))
				require.NoError(t, err)
				assert.True(t, reopened.Cart().IsEmpty(), "cleared cart is persisted")
			})

			t.Run("api key required", func(t *testing.T) {
				resp, err := http.Get(srv.URL + "/api/products")
				require.NoError(t, err)
				defer resp.Body.Close()
				assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
			})

			t.Run("metrics exposed", func(t *testing.T) {
				resp, err := http.Get(srv.URL + "/metrics")
				require.NoError(t, err)
				defer resp.Body.Close()
				body, err := io.ReadAll(resp.Body)
				require.NoError(t, err)

				text := string(body)
				assert.True(t, strings.Contains(text, `taste_heaven_orders_placed_total{delivery_type="Home Delivery"}`))
				assert.True(t, strings.Contains(text, "taste_heaven_identity_signups_total 1"))
				assert.NotContains(t, text, "b@x.com")
			})
		})
	}
}

type linePrompter struct {
	answers []string
}

func (p *linePrompter) Prompt(string) (string, error) {
	if len(p.answers) == 0 {
		return "", nil
	}
	answer := p.answers[0]
	p.answers = p.answers[1:]
	return answer, nil
}

type lineNotifier struct {
	messages []string
}

func (n *lineNotifier) Notify(msg string) {
	n.messages = append(n.messages, msg)
}
