package logic

import (
	"fmt"

	"github.com/cvntrieu/Group-3/pkg"
)

// ConnectionDetails is everything a client needs to join its voice room.
type ConnectionDetails struct {
	ServerURL        string `json:"server_url"`
	RoomName         string `json:"room_name"`
	ParticipantName  string `json:"participant_name"`
	ParticipantToken string `json:"participant_token"`
}

// SessionLogic creates realtime sessions: it resolves a display identity
// for the participant and issues the room grant admitting it.
type SessionLogic struct {
	generator  *pkg.UsernameGenerator
	rand       *pkg.RandomSource
	roomTokens *RoomTokenIssuer
	serverURL  string
}

func NewSessionLogic(
	generator *pkg.UsernameGenerator,
	rand *pkg.RandomSource,
	roomTokens *RoomTokenIssuer,
	serverURL string,
) *SessionLogic {
	return &SessionLogic{
		generator:  generator,
		rand:       rand,
		roomTokens: roomTokens,
		serverURL:  serverURL,
	}
}

// CreateSession issues connection details for a participant. A
// caller-supplied identity is trusted as-is (returning clients keep their
// cached name, and it bypasses the profanity filter); an empty identity
// gets a generated one the client is expected to cache for the session.
func (l *SessionLogic) CreateSession(identity, agentName string) (*ConnectionDetails, error) {
	if identity == "" {
		identity = l.generator.Generate(pkg.UsernameOptions{RandomDigits: 4})
	}

	suffix, err := l.rand.NextIntInRange(0, 9999)
	if err != nil {
		return nil, err
	}
	roomName := fmt.Sprintf("voice_assistant_room_%d", suffix)

	token, err := l.roomTokens.IssueRoomToken(identity, identity, roomName, agentName)
	if err != nil {
		return nil, err
	}

	return &ConnectionDetails{
		ServerURL:        l.serverURL,
		RoomName:         roomName,
		ParticipantName:  identity,
		ParticipantToken: token,
	}, nil
}
