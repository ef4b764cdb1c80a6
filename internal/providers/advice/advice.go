// Package advice produces short spiritual advice for the current state.
// The wording is opaque to the rest of the program.
package advice

import (
	"context"
	"math/rand/v2"
	"strings"

	"github.com/julianstephens/bidaya/internal/models"
	"github.com/julianstephens/bidaya/internal/seed"
)

// Advice is a quote with its translated, personalized advice
type Advice struct {
	Arabic      string `json:"arabic"`
	Translation string `json:"translation"`
}

// Message is one turn of a muhasabah conversation
type Message struct {
	Role string `json:"role"` // "user" or "model"
	Text string `json:"text"`
}

type Provider interface {
	Nasihat(ctx context.Context, state models.AppState) (Advice, error)
	Reply(ctx context.Context, msg string, history []Message) (string, error)
}

// FocusLevel is the heart disease level above which advice targets that disease
const FocusLevel = 6

// QuoteProvider answers from a fixed local catalog
type QuoteProvider struct {
	Quotes []Advice
	// Pick returns an index in [0, n). Defaults to a random pick.
	Pick func(n int) int
}

func NewQuoteProvider() *QuoteProvider {
	return &QuoteProvider{Quotes: quotes}
}

// topic maps a disease to the words that mark a quote as relevant to it
var topics = []struct {
	id       string
	keywords []string
}{
	{seed.HasadID, []string{"hasad", "dengki"}},
	{seed.RiyaID, []string{"riya", "pamer"}},
	{seed.UjubID, []string{"ujub", "bangga"}},
}

// Nasihat picks a quote about the first disease above FocusLevel, checked
// in hasad, riya, ujub order, or any quote when none is.
func (p *QuoteProvider) Nasihat(ctx context.Context, state models.AppState) (Advice, error) {
	for _, t := range topics {
		if level(state, t.id) > FocusLevel {
			return p.pick(t.keywords), nil
		}
	}
	return p.pick(nil), nil
}

// Reply answers with a quote matching any disease named in msg
func (p *QuoteProvider) Reply(ctx context.Context, msg string, history []Message) (string, error) {
	lower := strings.ToLower(msg)
	var keywords []string
	for _, t := range topics {
		for _, k := range t.keywords {
			if strings.Contains(lower, k) {
				keywords = t.keywords
			}
		}
	}
	a := p.pick(keywords)
	return a.Arabic + "\n\n" + a.Translation, nil
}

func (p *QuoteProvider) pick(keywords []string) Advice {
	candidates := p.Quotes
	if len(keywords) > 0 {
		var matched []Advice
		for _, q := range p.Quotes {
			lower := strings.ToLower(q.Translation)
			for _, k := range keywords {
				if strings.Contains(lower, k) {
					matched = append(matched, q)
					break
				}
			}
		}
		if len(matched) > 0 {
			candidates = matched
		}
	}
	if len(candidates) == 0 {
		return Advice{}
	}
	pick := p.Pick
	if pick == nil {
		pick = rand.IntN
	}
	return candidates[pick(len(candidates))]
}

func level(state models.AppState, id string) int {
	for _, d := range state.HeartDiseases {
		if d.ID == id {
			return d.Level
		}
	}
	return 1
}

var quotes = []Advice{
	{
		Arabic:      "إِيَّاكَ وَالحَسَدَ، فَإِنَّ الحَسَدَ يَأْكُلُ الحَسَنَاتِ كَمَا تَأْكُلُ النَّارُ الحَطَبَ",
		Translation: "Jauhilah hasad (dengki), karena sesungguhnya hasad itu memakan kebaikan sebagaimana api memakan kayu bakar.",
	},
	{
		Arabic:      "الرِّيَاءُ شِرْكٌ أَصْغَرُ، يُحْبِطُ العَمَلَ كَمَا يُحْبِطُهُ الشِّرْكُ الأَكْبَرُ",
		Translation: "Riya (pamer) adalah syirik kecil, ia menggugurkan amal sebagaimana syirik besar menggugurkannya.",
	},
	{
		Arabic:      "العُجْبُ يَهْدِمُ المَحَاسِنَ، وَيُعْمِي البَصِيرَةَ عَنْ رُؤْيَةِ العُيُوبِ",
		Translation: "Ujub (bangga diri) menghancurkan kebaikan-kebaikan, dan membutakan mata hati dari melihat aib sendiri.",
	},
	{
		Arabic:      "عَلَيْكَ بِمُرَاقَبَةِ اللهِ فِي السِّرِّ وَالعَلَانِيَةِ",
		Translation: "Hendaklah engkau senantiasa merasa diawasi oleh Allah, baik dalam keadaan sepi maupun ramai.",
	},
	{
		Arabic:      "مَنْ لَمْ يَصْبِرْ عَلَى ذُلِّ التَّعَلُّمِ سَاعَةً، بَقِيَ فِي ذُلِّ الجَهْلِ أَبَدًا",
		Translation: "Barangsiapa tidak sabar menahan lelahnya belajar sesaat, ia akan menanggung hinanya kebodohan selamanya.",
	},
	{
		Arabic:      "رَأْسُ الحِكْمَةِ مَخَافَةُ اللهِ",
		Translation: "Pangkal dari segala hikmah adalah takut kepada Allah.",
	},
	{
		Arabic:      "مَنْ عَرَفَ نَفْسَهُ فَقَدْ عَرَفَ رَبَّهُ",
		Translation: "Barangsiapa mengenal dirinya, sungguh ia telah mengenal Tuhannya.",
	},
	{
		Arabic:      "لِسَانُكَ أَسَدُكَ، إِنْ صُنْتَهُ صَانَكَ، وَإِنْ أَهْمَلْتَهُ أَكَلَكَ",
		Translation: "Lisanmu adalah singamu. Jika engkau menjaganya, ia akan menjagamu. Jika engkau membiarkannya, ia akan memangsamu.",
	},
	{
		Arabic:      "لَا تَقْطَعْ أَمَلَكَ مِنَ اللهِ وَإِنْ عَظُمَتْ ذُنُوبُكَ",
		Translation: "Jangan putuskan harapanmu kepada Allah, meskipun dosamu sangat besar.",
	},
	{
		Arabic:      "مَنْ كَثُرَ كَلَامُهُ كَثُرَ سَقَطُهُ",
		Translation: "Barangsiapa banyak bicaranya, banyak pula kesalahannya.",
	},
	{
		Arabic:      "أَفْضَلُ الزُّهْدِ إِخْفَاءُ الزُّهْدِ",
		Translation: "Sebaik-baik zuhud adalah menyembunyikan kezuhudan itu sendiri.",
	},
	{
		Arabic:      "إِنَّمَا الأَعْمَالُ بِالخَوَاتِيمِ",
		Translation: "Sesungguhnya amal itu tergantung pada akhirnya (penutupnya).",
	},
}
