// Package auth decodes the stored session credential used to authorize
// Connect API calls. The credential is the base64 encoding of a JSON
// two-element array holding the OAuth1 and OAuth2 token objects, the same
// format produced by the garth Python library's dumps().
package auth

import (
	"encoding/base64"
	"encoding/json"
	"strings"

	"github.com/matin/garth-mcp-server/internal/types"
	"github.com/pkg/errors"
)

// DecodeToken parses a serialized session token into a Session.
func DecodeToken(token string) (*types.Session, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, types.ErrInvalidToken
	}

	raw, err := base64.StdEncoding.DecodeString(token)
	if err != nil {
		// Tokens copied out of shells sometimes lose their padding.
		raw, err = base64.RawStdEncoding.DecodeString(token)
		if err != nil {
			return nil, errors.Wrap(types.ErrInvalidToken, "not base64")
		}
	}

	var pair []json.RawMessage
	if err := json.Unmarshal(raw, &pair); err != nil {
		return nil, errors.Wrap(types.ErrInvalidToken, "not a JSON array")
	}
	if len(pair) != 2 {
		return nil, errors.Wrapf(types.ErrInvalidToken, "expected 2 token objects, got %d", len(pair))
	}

	session := &types.Session{}
	if err := json.Unmarshal(pair[0], &session.OAuth1); err != nil {
		return nil, errors.Wrap(types.ErrInvalidToken, "bad oauth1 token")
	}
	if err := json.Unmarshal(pair[1], &session.OAuth2); err != nil {
		return nil, errors.Wrap(types.ErrInvalidToken, "bad oauth2 token")
	}
	if session.OAuth2.AccessToken == "" {
		return nil, errors.Wrap(types.ErrInvalidToken, "missing access token")
	}

	return session, nil
}

// EncodeToken serializes a session back into the portable token format.
func EncodeToken(session *types.Session) (string, error) {
	if session == nil {
		return "", types.ErrInvalidToken
	}

	oauth1, err := json.Marshal(session.OAuth1)
	if err != nil {
		return "", errors.Wrap(err, "failed to marshal oauth1 token")
	}
	oauth2, err := json.Marshal(session.OAuth2)
	if err != nil {
		return "", errors.Wrap(err, "failed to marshal oauth2 token")
	}

	raw, err := json.Marshal([]json.RawMessage{oauth1, oauth2})
	if err != nil {
		return "", errors.Wrap(err, "failed to marshal token pair")
	}

	return base64.StdEncoding.EncodeToString(raw), nil
}
