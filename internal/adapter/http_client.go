package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/contactapp/contact-api/models"
)

type HTTPClientConfig struct {
	BaseURL string
	Timeout time.Duration
}

type httpAPIClient struct {
	client *resty.Client

	mu    sync.RWMutex
	token string
}

func NewHTTPAPIClient(cfg HTTPClientConfig) APIClient {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "http://localhost:3000"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout)

	return &httpAPIClient{client: cli}
}

func (h *httpAPIClient) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpAPIClient) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// request prepares one resty request with the JSON content type and, when a
// token is stored, the raw Authorization header.
func (h *httpAPIClient) request(ctx context.Context) *resty.Request {
	req := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json")

	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", token)
	}

	return req
}

// decodeData unwraps the {"data": ...} envelope of resp into out.
func decodeData(resp *resty.Response, out any) error {
	envelope := struct {
		Data any `json:"data"`
	}{Data: out}

	if err := json.Unmarshal(resp.Body(), &envelope); err != nil {
		return fmt.Errorf("decode response envelope: %w", err)
	}

	return nil
}

func (h *httpAPIClient) Register(ctx context.Context, req models.RegisterUserRequest) (models.UserResponse, error) {
	resp, err := h.request(ctx).
		SetBody(req).
		Post("/api/users")
	if err != nil {
		return models.UserResponse{}, fmt.Errorf("register request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.UserResponse{}, err
	}

	var user models.UserResponse
	if err = decodeData(resp, &user); err != nil {
		return models.UserResponse{}, err
	}

	return user, nil
}

func (h *httpAPIClient) Login(ctx context.Context, req models.LoginUserRequest) (models.TokenResponse, error) {
	resp, err := h.request(ctx).
		SetBody(req).
		Post("/api/users/login")
	if err != nil {
		return models.TokenResponse{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.TokenResponse{}, err
	}

	var token models.TokenResponse
	if err = decodeData(resp, &token); err != nil {
		return models.TokenResponse{}, err
	}

	h.SetToken(token.Token)
	return token, nil
}

func (h *httpAPIClient) CurrentUser(ctx context.Context) (models.UserResponse, error) {
	resp, err := h.request(ctx).Get("/api/users/current")
	if err != nil {
		return models.UserResponse{}, fmt.Errorf("current user request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.UserResponse{}, err
	}

	var user models.UserResponse
	if err = decodeData(resp, &user); err != nil {
		return models.UserResponse{}, err
	}

	return user, nil
}

func (h *httpAPIClient) UpdateUser(ctx context.Context, req models.UpdateUserRequest) (models.UserResponse, error) {
	resp, err := h.request(ctx).
		SetBody(req).
		Patch("/api/users/current")
	if err != nil {
		return models.UserResponse{}, fmt.Errorf("update user request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.UserResponse{}, err
	}

	var user models.UserResponse
	if err = decodeData(resp, &user); err != nil {
		return models.UserResponse{}, err
	}

	return user, nil
}

func (h *httpAPIClient) Logout(ctx context.Context) error {
	resp, err := h.request(ctx).Delete("/api/users/logout")
	if err != nil {
		return fmt.Errorf("logout request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}

	h.SetToken("")
	return nil
}

func (h *httpAPIClient) CreateContact(ctx context.Context, contact models.Contact) (models.Contact, error) {
	resp, err := h.request(ctx).
		SetBody(contact).
		Post("/api/contacts")
	if err != nil {
		return models.Contact{}, fmt.Errorf("create contact request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Contact{}, err
	}

	var created models.Contact
	if err = decodeData(resp, &created); err != nil {
		return models.Contact{}, err
	}

	return created, nil
}

func (h *httpAPIClient) GetContact(ctx context.Context, contactID int64) (models.Contact, error) {
	resp, err := h.request(ctx).Get(fmt.Sprintf("/api/contacts/%d", contactID))
	if err != nil {
		return models.Contact{}, fmt.Errorf("get contact request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Contact{}, err
	}

	var contact models.Contact
	if err = decodeData(resp, &contact); err != nil {
		return models.Contact{}, err
	}

	return contact, nil
}

func (h *httpAPIClient) UpdateContact(ctx context.Context, contactID int64, contact models.Contact) (models.Contact, error) {
	resp, err := h.request(ctx).
		SetBody(contact).
		Put(fmt.Sprintf("/api/contacts/%d", contactID))
	if err != nil {
		return models.Contact{}, fmt.Errorf("update contact request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Contact{}, err
	}

	var updated models.Contact
	if err = decodeData(resp, &updated); err != nil {
		return models.Contact{}, err
	}

	return updated, nil
}

func (h *httpAPIClient) DeleteContact(ctx context.Context, contactID int64) error {
	resp, err := h.request(ctx).Delete(fmt.Sprintf("/api/contacts/%d", contactID))
	if err != nil {
		return fmt.Errorf("delete contact request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpAPIClient) SearchContacts(ctx context.Context, filter models.ContactFilter) ([]models.Contact, models.Paging, error) {
	req := h.request(ctx)
	if filter.Name != "" {
		req.SetQueryParam("name", filter.Name)
	}
	if filter.Email != "" {
		req.SetQueryParam("email", filter.Email)
	}
	if filter.Phone != "" {
		req.SetQueryParam("phone", filter.Phone)
	}
	if filter.Page > 0 {
		req.SetQueryParam("page", fmt.Sprint(filter.Page))
	}
	if filter.Size > 0 {
		req.SetQueryParam("size", fmt.Sprint(filter.Size))
	}

	resp, err := req.Get("/api/contacts")
	if err != nil {
		return nil, models.Paging{}, fmt.Errorf("search contacts request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, models.Paging{}, err
	}

	var page models.PageResponse
	var contacts []models.Contact
	page.Data = &contacts
	if err = json.Unmarshal(resp.Body(), &page); err != nil {
		return nil, models.Paging{}, fmt.Errorf("decode response envelope: %w", err)
	}

	return contacts, page.Paging, nil
}

func (h *httpAPIClient) CreateAddress(ctx context.Context, contactID int64, address models.Address) (models.Address, error) {
	resp, err := h.request(ctx).
		SetBody(address).
		Post(fmt.Sprintf("/api/contacts/%d/addresses", contactID))
	if err != nil {
		return models.Address{}, fmt.Errorf("create address request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Address{}, err
	}

	var created models.Address
	if err = decodeData(resp, &created); err != nil {
		return models.Address{}, err
	}

	return created, nil
}

func (h *httpAPIClient) GetAddress(ctx context.Context, contactID, addressID int64) (models.Address, error) {
	resp, err := h.request(ctx).Get(fmt.Sprintf("/api/contacts/%d/addresses/%d", contactID, addressID))
	if err != nil {
		return models.Address{}, fmt.Errorf("get address request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Address{}, err
	}

	var address models.Address
	if err = decodeData(resp, &address); err != nil {
		return models.Address{}, err
	}

	return address, nil
}

func (h *httpAPIClient) UpdateAddress(ctx context.Context, contactID, addressID int64, address models.Address) (models.Address, error) {
	resp, err := h.request(ctx).
		SetBody(address).
		Put(fmt.Sprintf("/api/contacts/%d/addresses/%d", contactID, addressID))
	if err != nil {
		return models.Address{}, fmt.Errorf("update address request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Address{}, err
	}

	var updated models.Address
	if err = decodeData(resp, &updated); err != nil {
		return models.Address{}, err
	}

	return updated, nil
}

func (h *httpAPIClient) DeleteAddress(ctx context.Context, contactID, addressID int64) error {
	resp, err := h.request(ctx).Delete(fmt.Sprintf("/api/contacts/%d/addresses/%d", contactID, addressID))
	if err != nil {
		return fmt.Errorf("delete address request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpAPIClient) ListAddresses(ctx context.Context, contactID int64) ([]models.Address, error) {
	resp, err := h.request(ctx).Get(fmt.Sprintf("/api/contacts/%d/addresses", contactID))
	if err != nil {
		return nil, fmt.Errorf("list addresses request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var addresses []models.Address
	if err = decodeData(resp, &addresses); err != nil {
		return nil, err
	}

	return addresses, nil
}
