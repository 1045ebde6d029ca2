package consts

import "github.com/gogf/gf/v2/frame/g"

// Media kinds derived from file extensions.
const (
	MediaKindAudio = "audio"
	MediaKindVideo = "video"
)

// MediaKindByExt maps supported file extensions (lowercase, with dot) to
// their media kind. Anything absent from this map is rejected.
var MediaKindByExt = g.MapStrStr{
	".mp4":  MediaKindVideo,
	".avi":  MediaKindVideo,
	".mov":  MediaKindVideo,
	".mkv":  MediaKindVideo,
	".wmv":  MediaKindVideo,
	".flv":  MediaKindVideo,
	".webm": MediaKindVideo,
	".mp3":  MediaKindAudio,
	".wav":  MediaKindAudio,
	".aac":  MediaKindAudio,
	".m4a":  MediaKindAudio,
	".flac": MediaKindAudio,
	".ogg":  MediaKindAudio,
}

const (
	MaxUploadSize = 1024 * 1024 * 1024 // 1GB

	// DefaultLanguage is the language hint passed to the recognition engine
	// when the configuration does not override it.
	DefaultLanguage = "pt"

	// CtxUserID is the context variable key holding the authenticated user id.
	CtxUserID = "knscribe.userId"
)
