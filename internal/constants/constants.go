package constants

// 事件类型常量
const (
	// 房间事件
	EventParticipantsUpdated = "rooms.participants.updated"

	// 社区事件
	EventMemberJoined = "community.member.joined"
	EventMemberLeft   = "community.member.left"
)

// Redis Pub/Sub 频道
const (
	// RedisChannelCounts carries participant-count snapshots between
	// instances.
	RedisChannelCounts = "rooms.counts"
)

// WebSocket message types
const (
	WsTypeCounts = "counts"
)
