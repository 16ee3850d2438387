package redis

import (
	"fmt"

	"github.com/quizhost/quizhost/internal/model"
)

// Key prefix for all trivia data
const keyPrefix = "quizhost"

// sessionKey returns the Redis key for a GuildSession
func sessionKey(guildID model.GuildID) string {
	return fmt.Sprintf("%s:session:%s", keyPrefix, guildID)
}

// gameKey returns the Redis key for a Game
func gameKey(id model.GameID) string {
	return fmt.Sprintf("%s:game:%s", keyPrefix, id)
}

// hostKey returns the Redis key for a Host
func hostKey(id model.HostID) string {
	return fmt.Sprintf("%s:host:%s", keyPrefix, id)
}

// usernameIndexKey returns the Redis key for the username -> host_id index
func usernameIndexKey(username string) string {
	return fmt.Sprintf("%s:idx:username:%s", keyPrefix, username)
}

// packKey returns the Redis key for a QuestionPack
func packKey(name string) string {
	return fmt.Sprintf("%s:pack:%s", keyPrefix, name)
}

// packIndexKey returns the Redis key for the SET of pack names
func packIndexKey() string {
	return fmt.Sprintf("%s:idx:packs", keyPrefix)
}
