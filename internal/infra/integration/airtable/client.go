package airtable

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/qpeachy/deactivate-user-airtable/internal/entity"
)

const DefaultBaseURL = "https://api.airtable.com"

type Client struct {
	baseURL  string
	apiToken string
	http     *http.Client
	log      *logrus.Logger
}

func NewClient(apiToken, baseURL string, log *logrus.Logger) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL:  baseURL,
		apiToken: apiToken,
		http:     &http.Client{Timeout: 10 * time.Second},
		log:      log,
	}
}

// DeactivateUser: usa a Enterprise API do Airtable para marcar o usuário
// como desativado na conta. Uma chamada por usuário, sem retry (quem
// decide tentar de novo é quem roda o batch outra vez).
func (c *Client) DeactivateUser(ctx context.Context, accountID string, user *entity.User) error {
	if user.ID == "" {
		return fmt.Errorf("usuário sem id, impossível montar a URL de desativação")
	}

	url := fmt.Sprintf("%s/v0/meta/enterpriseAccounts/%s/users/%s", c.baseURL, accountID, user.ID)

	// 1. Monta o payload
	payload := deactivateUserRequest{
		State:     "deactivated",
		Email:     deref(user.Email),
		FirstName: deref(user.FirstName),
		LastName:  deref(user.LastName),
	}
	jsonBody, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("erro ao gerar json: %w", err)
	}

	c.log.Infof("Deactivating user %s %s...", payload.FirstName, payload.LastName)

	// 2. Cria a request
	req, err := http.NewRequestWithContext(ctx, http.MethodPatch, url, bytes.NewBuffer(jsonBody))
	if err != nil {
		return err
	}
	c.setHeaders(req)

	// 3. Envia
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("erro na conexão com o airtable: %w", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)

	// 4. O corpo da resposta é só diagnóstico, nunca fluxo de controle
	if len(body) > 0 {
		c.logResponse(body)
	}

	// 5. Trata status fora de 2xx
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.log.Warnf("❌ Airtable API status %d for user %s", resp.StatusCode, user.ID)
		return &StatusError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	return nil
}

func (c *Client) logResponse(body []byte) {
	var pretty bytes.Buffer
	if err := json.Indent(&pretty, body, "", "  "); err != nil {
		// Nem sempre vem JSON, loga cru mesmo
		c.log.Debugf("Got response: %s", string(body))
		return
	}
	c.log.Debugf("Got response: %s", pretty.String())
}

// setHeaders centraliza os headers obrigatórios
func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.apiToken))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", "deactivate-user-airtable/1.0")
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
