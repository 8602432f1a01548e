package session

import "slices"

// NoticeKind classifies a feed notice for styling.
type NoticeKind string

// Notice kinds.
const (
	NoticeHooked  NoticeKind = "hooked"
	NoticeCaught  NoticeKind = "caught"
	NoticeEscaped NoticeKind = "escaped"
	NoticeSnapped NoticeKind = "snapped"
	NoticeSlack   NoticeKind = "slack"
	NoticeNoEcho  NoticeKind = "no_echo"
	NoticeQuest   NoticeKind = "quest"
	NoticeLevel   NoticeKind = "level"
)

// Notice is one line of the notification feed.
type Notice struct {
	Message string
	Kind    NoticeKind
	Age     float64
}

// feed keeps notices until they are lifetime seconds old.
type feed struct {
	lifetime float64
	notices  []Notice // oldest first
}

func (f *feed) push(msg string, kind NoticeKind) {
	f.notices = append(f.notices, Notice{Message: msg, Kind: kind})
}

func (f *feed) age(dt float64) {
	kept := f.notices[:0]
	for _, n := range f.notices {
		n.Age += dt
		if n.Age < f.lifetime {
			kept = append(kept, n)
		}
	}
	f.notices = kept
}

// list returns a newest-first copy.
func (f *feed) list() []Notice {
	out := slices.Clone(f.notices)
	slices.Reverse(out)
	return out
}
