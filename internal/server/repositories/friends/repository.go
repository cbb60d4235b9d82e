//go:generate mockgen -source=repository.go -destination=../mocks/friends.go -package=mocks -mock_names=Repository=MockFriendRepository

package friends

import "context"

// Repository answers friendship questions. Both methods are read-only and
// symmetric: the order of profile ids never changes the answer.
type Repository interface {
	// FriendIDsOf returns the profile ids on the other side of every edge
	// touching profileID, in one query.
	FriendIDsOf(ctx context.Context, profileID int64) ([]int64, error)
	AreFriends(ctx context.Context, a, b int64) (bool, error)
}
