package kommo

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/xavierca1/site-leads/internal/entity"
)

type Client struct {
	apiToken string
	baseURL  string
	statusID int
	http     *http.Client
}

// NewClient aponta para a API v4 da conta (ex: https://conta.kommo.com/api/v4).
func NewClient(baseURL, apiToken string, statusID int) *Client {
	return &Client{
		apiToken: apiToken,
		baseURL:  strings.TrimRight(baseURL, "/"),
		statusID: statusID,
		http:     &http.Client{Timeout: 15 * time.Second},
	}
}

func (c *Client) Configured() bool {
	return c.apiToken != "" && c.baseURL != ""
}

// CreateLead registra o lead do site no funil, reaproveitando o contato
// quando o telefone ou email já existe.
func (c *Client) CreateLead(ctx context.Context, lead entity.Lead) (int, error) {
	if !c.Configured() {
		log.Println("⚠️ Kommo: API_TOKEN não configurado")
		return 0, fmt.Errorf("kommo não configurado")
	}

	contactID, err := c.findOrCreateContact(ctx, lead)
	if err != nil {
		return 0, fmt.Errorf("erro ao criar/buscar contato: %w", err)
	}

	name := lead.Name
	if lead.Company != "" && lead.Company != entity.NotProvided {
		name = fmt.Sprintf("%s - %s", lead.Name, lead.Company)
	}

	payload := []leadRequest{{
		Name:     name,
		StatusID: c.statusID,
		Embedded: leadEmbedded{
			Tags:     []tag{{Name: "site"}, {Name: lead.Source}},
			Contacts: []contactRef{{ID: contactID}},
		},
	}}

	var result embeddedIDs
	if err := c.do(ctx, http.MethodPost, "/leads", payload, &result); err != nil {
		return 0, fmt.Errorf("erro ao criar lead: %w", err)
	}
	if len(result.Embedded.Leads) == 0 {
		return 0, fmt.Errorf("lead não criado")
	}

	leadID := result.Embedded.Leads[0].ID
	log.Printf("✅ Kommo: Lead criado #%d para %s", leadID, lead.Name)
	return leadID, nil
}

func (c *Client) findOrCreateContact(ctx context.Context, lead entity.Lead) (int, error) {
	query := lead.Email
	if lead.Phone != "" && lead.Phone != entity.NotProvided {
		query = lead.Phone
	}

	contactID, err := c.findContact(ctx, query)
	if err == nil && contactID > 0 {
		log.Printf("📱 Kommo: Contato existente encontrado: %d", contactID)
		return contactID, nil
	}

	return c.createContact(ctx, lead)
}

func (c *Client) findContact(ctx context.Context, query string) (int, error) {
	var result embeddedIDs
	// Kommo responde 204 sem corpo quando não acha nada
	if err := c.do(ctx, http.MethodGet, "/contacts?query="+url.QueryEscape(query), nil, &result); err != nil {
		return 0, err
	}
	if len(result.Embedded.Contacts) > 0 {
		return result.Embedded.Contacts[0].ID, nil
	}
	return 0, fmt.Errorf("contato não encontrado")
}

func (c *Client) createContact(ctx context.Context, lead entity.Lead) (int, error) {
	fields := []customField{{
		FieldCode: "EMAIL",
		Values:    []fieldValue{{Value: lead.Email, EnumCode: "WORK"}},
	}}
	if lead.Phone != "" && lead.Phone != entity.NotProvided {
		fields = append(fields, customField{
			FieldCode: "PHONE",
			Values:    []fieldValue{{Value: lead.Phone, EnumCode: "WORK"}},
		})
	}

	var result embeddedIDs
	payload := []contactRequest{{Name: lead.Name, CustomFieldsValues: fields}}
	if err := c.do(ctx, http.MethodPost, "/contacts", payload, &result); err != nil {
		return 0, err
	}
	if len(result.Embedded.Contacts) == 0 {
		return 0, fmt.Errorf("erro ao obter ID do contato criado")
	}

	contactID := result.Embedded.Contacts[0].ID
	log.Printf("✅ Kommo: Novo contato criado: %d", contactID)
	return contactID, nil
}

func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return err
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	c.addAuthHeaders(req)

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated && resp.StatusCode != http.StatusNoContent {
		return fmt.Errorf("status %d - %s", resp.StatusCode, string(raw))
	}
	if len(raw) == 0 || out == nil {
		return nil
	}
	return json.Unmarshal(raw, out)
}

func (c *Client) addAuthHeaders(req *http.Request) {
	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.apiToken))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
}
