package command

import (
	"testing"

	"github.com/jbeshir/conduit-feed/internal/datasources/mocks"
	"github.com/jbeshir/conduit-feed/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSetFollow_Execute(t *testing.T) {
	for _, follow := range []bool{true, false} {
		setter := mocks.NewMockFollowSetter(t)
		setter.EXPECT().SetFollow(mock.Anything, "viewer", "alice", follow).Return(nil)

		cmd := &SetFollow{Setter: setter}
		_, err := cmd.Execute(testContext(), SetFollowRequest{FollowerID: "viewer", FolloweeID: "alice", Follow: follow})
		require.NoError(t, err)
	}
}

func TestSetFollow_Execute_Self(t *testing.T) {
	cmd := &SetFollow{Setter: mocks.NewMockFollowSetter(t)}
	_, err := cmd.Execute(testContext(), SetFollowRequest{FollowerID: "alice", FolloweeID: "alice", Follow: true})
	assert.ErrorIs(t, err, domain.ErrCannotFollowSelf)
}
