package controller

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/jbeshir/conduit-feed/internal/command"
	cmdmocks "github.com/jbeshir/conduit-feed/internal/command/mocks"
	"github.com/jbeshir/conduit-feed/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestProfileFollowSet_ServeHTTP(t *testing.T) {
	cases := []struct {
		name       string
		follow     bool
		followee   string
		commandErr error
		wantStatus int
	}{
		{name: "follow", follow: true, followee: "bob", wantStatus: http.StatusNoContent},
		{name: "unfollow", follow: false, followee: "bob", wantStatus: http.StatusNoContent},
		{
			name:       "self",
			follow:     true,
			followee:   "alice",
			commandErr: domain.ErrCannotFollowSelf,
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			followCmd := cmdmocks.NewMockCommand[command.SetFollowRequest, command.Empty](t)
			followCmd.EXPECT().
				Execute(mock.Anything, command.SetFollowRequest{
					FollowerID: "alice",
					FolloweeID: tc.followee,
					Follow:     tc.follow,
				}).
				Return(command.Empty{}, tc.commandErr)

			req := httptest.NewRequest(http.MethodPost, "/v1/profiles/"+tc.followee+"/follow", nil)
			req = testContextWithUserID("alice")(req)
			req = mux.SetURLVars(req, map[string]string{"user_id": tc.followee})
			rec := httptest.NewRecorder()

			ProfileFollowSet{Command: followCmd, Follow: tc.follow}.ServeHTTP(rec, req)

			assert.Equal(t, tc.wantStatus, rec.Code)
		})
	}
}
