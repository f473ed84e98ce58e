package mbti

import (
	"fmt"
	"sort"
)

// TypeInfo is presentation metadata for one of the 16 types.
type TypeInfo struct {
	Type        Type   `json:"type"`
	Name        string `json:"name"`
	Nickname    string `json:"nickname"`
	Description string `json:"description"`
}

var typeInfo = map[Type]TypeInfo{
	"INTJ": {Type: "INTJ", Name: "Architect", Nickname: "The Mastermind", Description: "Imaginative and strategic thinkers with a plan for everything."},
	"INTP": {Type: "INTP", Name: "Logician", Nickname: "The Thinker", Description: "Innovative inventors with an unquenchable thirst for knowledge."},
	"ENTJ": {Type: "ENTJ", Name: "Commander", Nickname: "The Executive", Description: "Bold, imaginative and strong-willed leaders who find or make a way."},
	"ENTP": {Type: "ENTP", Name: "Debater", Nickname: "The Visionary", Description: "Smart and curious thinkers who cannot resist an intellectual challenge."},
	"INFJ": {Type: "INFJ", Name: "Advocate", Nickname: "The Counselor", Description: "Quiet and mystical, yet inspiring and tireless idealists."},
	"INFP": {Type: "INFP", Name: "Mediator", Nickname: "The Healer", Description: "Poetic, kind and altruistic people, always eager to help a good cause."},
	"ENFJ": {Type: "ENFJ", Name: "Protagonist", Nickname: "The Teacher", Description: "Charismatic and inspiring leaders who mesmerize their listeners."},
	"ENFP": {Type: "ENFP", Name: "Campaigner", Nickname: "The Champion", Description: "Enthusiastic, creative and sociable free spirits who find reason to smile."},
	"ISTJ": {Type: "ISTJ", Name: "Logistician", Nickname: "The Inspector", Description: "Practical and fact-minded individuals whose reliability cannot be doubted."},
	"ISFJ": {Type: "ISFJ", Name: "Defender", Nickname: "The Protector", Description: "Very dedicated and warm protectors, always ready to defend loved ones."},
	"ESTJ": {Type: "ESTJ", Name: "Executive", Nickname: "The Supervisor", Description: "Excellent administrators, unsurpassed at managing things or people."},
	"ESFJ": {Type: "ESFJ", Name: "Consul", Nickname: "The Provider", Description: "Extraordinarily caring, social and popular people, always eager to help."},
	"ISTP": {Type: "ISTP", Name: "Virtuoso", Nickname: "The Craftsman", Description: "Bold and practical experimenters, masters of all kinds of tools."},
	"ISFP": {Type: "ISFP", Name: "Adventurer", Nickname: "The Composer", Description: "Flexible and charming artists, always ready to explore something new."},
	"ESTP": {Type: "ESTP", Name: "Entrepreneur", Nickname: "The Dynamo", Description: "Smart, energetic and perceptive people who truly enjoy living on the edge."},
	"ESFP": {Type: "ESFP", Name: "Entertainer", Nickname: "The Performer", Description: "Spontaneous, energetic and enthusiastic people who make life exciting."},
}

// Info returns the metadata for a four-letter type code.
func Info(t Type) (TypeInfo, error) {
	info, ok := typeInfo[t]
	if !ok {
		return TypeInfo{}, fmt.Errorf("%w: %q", ErrUnknownType, string(t))
	}
	return info, nil
}

// AllTypes returns metadata for all 16 types.
func AllTypes() []TypeInfo {
	out := make([]TypeInfo, 0, len(typeInfo))
	for _, info := range typeInfo {
		out = append(out, info)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Type < out[j].Type })
	return out
}
