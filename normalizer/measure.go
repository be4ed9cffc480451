package normalizer

import "strings"

// A word is read as [C](VC)^m[V]. A consonant run starts with any letter
// but a, e, i, o, u and continues with anything but a vowel or y. A vowel run
// starts with a vowel or y and continues with vowels only. An uppercase Y is
// a consonant everywhere.

func isVowel(c byte) bool {
	switch c {
	case 'a', 'e', 'i', 'o', 'u':
		return true
	}
	return false
}

func isVowelOrY(c byte) bool {
	return isVowel(c) || c == 'y'
}

// measure returns m and whether at least one vowel run was found.
func measure(s string) (int, bool) {
	n := len(s)
	i, m := 0, 0
	vowel := false
	if i < n && !isVowel(s[i]) {
		i++
		for i < n && !isVowelOrY(s[i]) {
			i++
		}
	}
	for i < n {
		vowel = true
		i++
		for i < n && isVowel(s[i]) {
			i++
		}
		if i >= n {
			break
		}
		i++
		for i < n && !isVowelOrY(s[i]) {
			i++
		}
		m++
	}
	return m, vowel
}

func measureOf(s string) int {
	m, _ := measure(s)
	return m
}

func hasVowel(s string) bool {
	_, vowel := measure(s)
	return vowel
}

// endsCVC reports whether the whole stem is a consonant run, a single vowel
// and a final consonant other than w, x or y.
func endsCVC(s string) bool {
	n := len(s)
	if n < 3 || isVowel(s[0]) {
		return false
	}
	for i := 1; i < n-2; i++ {
		if isVowelOrY(s[i]) {
			return false
		}
	}
	last := s[n-1]
	return isVowelOrY(s[n-2]) && !isVowel(last) && last != 'w' && last != 'x' && last != 'y'
}

// trimSuffix removes suffix only when a non-empty stem remains.
func trimSuffix(word, suffix string) (string, bool) {
	if len(word) <= len(suffix) || !strings.HasSuffix(word, suffix) {
		return "", false
	}
	return word[:len(word)-len(suffix)], true
}
