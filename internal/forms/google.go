package forms

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/jwt"
)

// googleTokenURL is Google's OAuth2 token endpoint for service-account
// JWT grants.
const googleTokenURL = "https://oauth2.googleapis.com/token"

// googleScopes covers read-only access to form structure and responses.
var googleScopes = []string{
	"https://www.googleapis.com/auth/forms.body.readonly",
	"https://www.googleapis.com/auth/forms.responses.readonly",
}

// googleClient is the concrete Client backed by the Google Forms API. Auth is
// a service account whose email has been granted viewer access on the form.
type googleClient struct {
	baseURL     string // "https://forms.googleapis.com" outside of tests
	tokenSource oauth2.TokenSource
	httpClient  *http.Client
}

// NewGoogleClient returns a Client that calls the Google Forms API.
//   - saEmail:    the service account's client_email
//   - privateKey: the service account's PEM private key
func NewGoogleClient(saEmail, privateKey string) Client {
	cfg := &jwt.Config{
		Email:      saEmail,
		PrivateKey: []byte(privateKey),
		Scopes:     googleScopes,
		TokenURL:   googleTokenURL,
	}
	return &googleClient{
		baseURL: "https://forms.googleapis.com",
		// jwt.Config.TokenSource caches and refreshes tokens internally.
		tokenSource: cfg.TokenSource(context.Background()),
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// newClient is the test constructor: arbitrary base URL, injected tokens.
func newClient(baseURL string, src oauth2.TokenSource) *googleClient {
	return &googleClient{
		baseURL:     baseURL,
		tokenSource: src,
		httpClient:  &http.Client{Timeout: 5 * time.Second},
	}
}

// ─── GOOGLE FORMS API SHAPES ─────────────────────────────────────────────────

type formBody struct {
	FormID string     `json:"formId"`
	Items  []formItem `json:"items"`
}

type formItem struct {
	ItemID       string `json:"itemId"`
	Title        string `json:"title"`
	QuestionItem *struct {
		Question struct {
			QuestionID string `json:"questionId"`
		} `json:"question"`
	} `json:"questionItem"`
}

type responsesPage struct {
	Responses     []formResponse `json:"responses"`
	NextPageToken string         `json:"nextPageToken"`
}

type formResponse struct {
	ResponseID        string          `json:"responseId"`
	RespondentEmail   string          `json:"respondentEmail"`
	LastSubmittedTime time.Time       `json:"lastSubmittedTime"`
	Answers           json.RawMessage `json:"answers"`
}

type apiError struct {
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error"`
}

// ─── CLIENT IMPLEMENTATION ───────────────────────────────────────────────────

// ListQuestions fetches the form body and returns its question items in form
// order. Non-question items (section headers, media) carry no questionId and
// are skipped; positions still count only the questions that survive.
func (c *googleClient) ListQuestions(ctx context.Context, formID string) ([]QuestionLabel, error) {
	var body formBody
	if err := c.get(ctx, "/v1/forms/"+url.PathEscape(formID), &body); err != nil {
		return nil, err
	}

	var questions []QuestionLabel
	for _, item := range body.Items {
		if item.QuestionItem == nil || item.QuestionItem.Question.QuestionID == "" {
			continue
		}
		questions = append(questions, QuestionLabel{
			QuestionID: item.QuestionItem.Question.QuestionID,
			Label:      item.Title,
			Position:   len(questions) + 1,
		})
	}
	return questions, nil
}

// ListResponses fetches every response page for the form.
func (c *googleClient) ListResponses(ctx context.Context, formID string) ([]Response, error) {
	var out []Response
	pageToken := ""

	for {
		path := "/v1/forms/" + url.PathEscape(formID) + "/responses"
		if pageToken != "" {
			path += "?pageToken=" + url.QueryEscape(pageToken)
		}

		var page responsesPage
		if err := c.get(ctx, path, &page); err != nil {
			return nil, err
		}

		for _, r := range page.Responses {
			out = append(out, Response{
				ResponseID:      r.ResponseID,
				RespondentEmail: r.RespondentEmail,
				SubmittedAt:     r.LastSubmittedTime,
				Answers:         r.Answers,
			})
		}

		if page.NextPageToken == "" {
			return out, nil
		}
		pageToken = page.NextPageToken
	}
}

// get sends one authenticated GET and decodes the JSON body into dst.
func (c *googleClient) get(ctx context.Context, path string, dst any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("forms: build request: %w", err)
	}

	tok, err := c.tokenSource.Token()
	if err != nil {
		return fmt.Errorf("forms: obtain token: %w", err)
	}
	tok.SetAuthHeader(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("forms: http request: %w", err)
	}
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(io.LimitReader(resp.Body, 8<<20))
	if err != nil {
		return fmt.Errorf("forms: read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var parsed apiError
		if err := json.Unmarshal(respBytes, &parsed); err == nil && parsed.Error != nil {
			return fmt.Errorf("forms: API error %s (%d): %s",
				parsed.Error.Status, parsed.Error.Code, parsed.Error.Message)
		}
		return fmt.Errorf("forms: unexpected status %d: %.200s", resp.StatusCode, string(respBytes))
	}

	if err := json.Unmarshal(respBytes, dst); err != nil {
		return fmt.Errorf("forms: unmarshal response: %w", err)
	}
	return nil
}
