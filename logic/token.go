package logic

import (
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/cvntrieu/Group-3/models"
)

// TokenIssuer signs short-lived authentication JWTs for registered and
// anonymous users. Tokens are immutable once issued and there is no
// revocation list; expiry is the only termination mechanism.
type TokenIssuer struct {
	secret   []byte
	issuer   string
	audience string
	ttl      time.Duration
}

// NewTokenIssuer fails with ErrMissingSigningKey when any piece of signing
// material is absent, so a misconfigured server never starts issuing.
func NewTokenIssuer(secret, issuer, audience string, ttl time.Duration) (*TokenIssuer, error) {
	if secret == "" || issuer == "" || audience == "" {
		return nil, ErrMissingSigningKey
	}
	return &TokenIssuer{
		secret:   []byte(secret),
		issuer:   issuer,
		audience: audience,
		ttl:      ttl,
	}, nil
}

// IssueUserToken signs an HS256 token for the user, expiring exactly ttl
// after issuance.
func (t *TokenIssuer) IssueUserToken(user *models.User) (string, time.Time, error) {
	now := time.Now()
	expiresAt := now.Add(t.ttl)
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":         strconv.FormatUint(user.ID, 10),
		"unique_name": user.Username,
		"iss":         t.issuer,
		"aud":         t.audience,
		"iat":         now.Unix(),
		"exp":         expiresAt.Unix(),
	})
	signed, err := token.SignedString(t.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expiresAt, nil
}

// VideoGrant is the capability set embedded in a room token. The realtime
// transport verifies it; this side only issues.
type VideoGrant struct {
	Room           string `json:"room,omitempty"`
	RoomJoin       bool   `json:"roomJoin,omitempty"`
	CanPublish     bool   `json:"canPublish,omitempty"`
	CanPublishData bool   `json:"canPublishData,omitempty"`
	CanSubscribe   bool   `json:"canSubscribe,omitempty"`
}

// RoomAgent names an agent to dispatch into the room.
type RoomAgent struct {
	AgentName string `json:"agentName"`
}

// RoomConfig carries optional room setup alongside the grant.
type RoomConfig struct {
	Agents []RoomAgent `json:"agents"`
}

// RoomTokenClaims is the claim set the realtime transport expects: the API
// key as issuer, the participant identity as subject, and the video grant.
type RoomTokenClaims struct {
	jwt.RegisteredClaims
	Name       string      `json:"name,omitempty"`
	Video      VideoGrant  `json:"video"`
	RoomConfig *RoomConfig `json:"roomConfig,omitempty"`
}

// RoomTokenIssuer signs realtime-room grants with the transport's API
// secret.
type RoomTokenIssuer struct {
	apiKey    string
	apiSecret []byte
	ttl       time.Duration
}

func NewRoomTokenIssuer(apiKey, apiSecret string, ttl time.Duration) (*RoomTokenIssuer, error) {
	if apiKey == "" || apiSecret == "" {
		return nil, ErrMissingSigningKey
	}
	return &RoomTokenIssuer{
		apiKey:    apiKey,
		apiSecret: []byte(apiSecret),
		ttl:       ttl,
	}, nil
}

// IssueRoomToken grants join, publish audio, publish data and subscribe on
// the named room to the identity. agentName, when given, asks the
// transport to dispatch that agent into the room.
func (t *RoomTokenIssuer) IssueRoomToken(identity, name, room, agentName string) (string, error) {
	now := time.Now()
	claims := RoomTokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    t.apiKey,
			Subject:   identity,
			NotBefore: jwt.NewNumericDate(now),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(t.ttl)),
		},
		Name: name,
		Video: VideoGrant{
			Room:           room,
			RoomJoin:       true,
			CanPublish:     true,
			CanPublishData: true,
			CanSubscribe:   true,
		},
	}
	if agentName != "" {
		claims.RoomConfig = &RoomConfig{Agents: []RoomAgent{{AgentName: agentName}}}
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.apiSecret)
}
