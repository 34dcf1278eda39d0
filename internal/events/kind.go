package events

// Kind identifies an event variant. Kinds form a tree rooted at KindAny; a
// listener declared for a kind receives events of that kind and of every kind
// below it.
type Kind int

const (
	KindAny Kind = iota
	KindStarted
	KindPlayer
	KindPlayerPlay
	KindPlayerStop
	KindPlayerTick
	KindPlayList
	KindPlayListAdded
	KindPlayListRemoved
	KindPlayListTrack
)

// KindPlayerTick hangs off KindAny, not KindPlayer: player listeners do not
// see ticks.
var parents = map[Kind]Kind{
	KindStarted:         KindAny,
	KindPlayer:          KindAny,
	KindPlayerPlay:      KindPlayer,
	KindPlayerStop:      KindPlayer,
	KindPlayerTick:      KindAny,
	KindPlayList:        KindAny,
	KindPlayListAdded:   KindPlayList,
	KindPlayListRemoved: KindPlayList,
	KindPlayListTrack:   KindPlayList,
}

// Parent returns the kind's direct ancestor. KindAny is its own parent.
func (k Kind) Parent() Kind {
	if p, ok := parents[k]; ok {
		return p
	}
	return KindAny
}

// Is reports whether k is ancestor or one of its descendants.
func (k Kind) Is(ancestor Kind) bool {
	for {
		if k == ancestor {
			return true
		}
		if k == KindAny {
			return false
		}
		k = k.Parent()
	}
}

// String returns the name of the kind.
func (k Kind) String() string {
	switch k {
	case KindAny:
		return "ApplicationEvent"
	case KindStarted:
		return "StartedEvent"
	case KindPlayer:
		return "PlayerEvent"
	case KindPlayerPlay:
		return "PlayerPlayEvent"
	case KindPlayerStop:
		return "PlayerStopEvent"
	case KindPlayerTick:
		return "PlayerTickEvent"
	case KindPlayList:
		return "PlayListEvent"
	case KindPlayListAdded:
		return "PlayListAddedEvent"
	case KindPlayListRemoved:
		return "PlayListRemovedEvent"
	case KindPlayListTrack:
		return "PlayListTrackEvent"
	default:
		return "UnknownEvent"
	}
}
