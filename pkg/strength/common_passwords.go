package strength

// commonPasswords is a small fixed list of extremely common passwords. An
// exact match floors the score; entries of four or more characters also count
// as substrings.
var commonPasswords = map[string]bool{
	"password":   true,
	"password1":  true,
	"123456":     true,
	"12345678":   true,
	"123456789":  true,
	"1234567890": true,
	"qwerty":     true,
	"qwertyuiop": true,
	"abc123":     true,
	"letmein":    true,
	"welcome":    true,
	"monkey":     true,
	"dragon":     true,
	"sunshine":   true,
	"iloveyou":   true,
	"princess":   true,
	"football":   true,
	"baseball":   true,
	"superman":   true,
	"batman":     true,
	"trustno1":   true,
	"admin":      true,
	"root":       true,
	"guest":      true,
	"login":      true,
	"master":     true,
	"secret":     true,
	"shadow":     true,
	"hunter2":    true,
	"111111":     true,
	"000000":     true,
	"123123":     true,
	"654321":     true,
	"1q2w3e4r":   true,
	"1qaz2wsx":   true,
	"asdfghjkl":  true,
	"zxcvbnm":    true,
}
