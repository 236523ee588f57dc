package protocol

// Avatars 可选头像集合，与服务端约定一致
var Avatars = []string{"🐱", "🐶", "🐵", "🐰"}

// ValidAvatar 头像是否在可选集合内
func ValidAvatar(avatar string) bool {
	for _, a := range Avatars {
		if a == avatar {
			return true
		}
	}
	return false
}
