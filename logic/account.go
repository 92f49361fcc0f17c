package logic

import (
	"time"

	"github.com/cvntrieu/Group-3/dao"
	"github.com/cvntrieu/Group-3/models"
)

// AccountLogic handles registration and login for named users. Password
// mechanics belong to the external identity provider and are out of scope
// here; accounts are keyed by username only.
type AccountLogic struct {
	userDAO *dao.UserDAO
	tokens  *TokenIssuer
}

func NewAccountLogic(userDAO *dao.UserDAO, tokens *TokenIssuer) *AccountLogic {
	return &AccountLogic{
		userDAO: userDAO,
		tokens:  tokens,
	}
}

// Register creates a user, grants the default role and issues an auth
// token for the fresh account.
func (l *AccountLogic) Register(username string) (*models.User, string, time.Time, error) {
	user, createErr := l.userDAO.CreateUser(username)
	if createErr != nil {
		// The unique index on username rejects duplicates, including a
		// concurrent register that won the race after any pre-check
		// would have passed. The row existing now means taken.
		existing, err := l.userDAO.GetUserByUsername(username)
		if err == nil && existing != nil {
			return nil, "", time.Time{}, ErrUsernameTaken
		}
		return nil, "", time.Time{}, createErr
	}
	if err := l.userDAO.AddRole(user.ID, "user"); err != nil {
		return nil, "", time.Time{}, err
	}
	user.Role = "user"

	token, expiresAt, err := l.tokens.IssueUserToken(user)
	if err != nil {
		return nil, "", time.Time{}, err
	}
	return user, token, expiresAt, nil
}

// Login looks the user up and issues a fresh auth token. An unknown
// username is ErrUnauthenticated, indistinguishable to the caller from any
// other credential failure.
func (l *AccountLogic) Login(username string) (*models.User, string, time.Time, error) {
	user, err := l.userDAO.GetUserByUsername(username)
	if err != nil {
		return nil, "", time.Time{}, err
	}
	if user == nil {
		return nil, "", time.Time{}, ErrUnauthenticated
	}

	token, expiresAt, err := l.tokens.IssueUserToken(user)
	if err != nil {
		return nil, "", time.Time{}, err
	}
	return user, token, expiresAt, nil
}
