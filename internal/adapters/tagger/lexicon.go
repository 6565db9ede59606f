package tagger

// lexEntry pins a word to a coarse POS and, when the Penn tag is not
// derivable from the word shape, a fixed tag
type lexEntry struct {
	pos string
	tag string
}

// function words and a working vocabulary of open-class stems. Open
// class words omit the tag; it is filled in from inflection shape
var lexicon = map[string]lexEntry{
	// determiners
	"the": {POSDet, "DT"}, "a": {POSDet, "DT"}, "an": {POSDet, "DT"},
	"this": {POSDet, "DT"}, "that": {POSDet, "DT"}, "these": {POSDet, "DT"},
	"those": {POSDet, "DT"}, "every": {POSDet, "DT"}, "each": {POSDet, "DT"},
	"some": {POSDet, "DT"}, "any": {POSDet, "DT"}, "no": {POSDet, "DT"},
	"another": {POSDet, "DT"}, "all": {POSDet, "DT"}, "both": {POSDet, "DT"},

	// pronouns
	"i": {POSPron, "PRP"}, "you": {POSPron, "PRP"}, "he": {POSPron, "PRP"},
	"she": {POSPron, "PRP"}, "it": {POSPron, "PRP"}, "we": {POSPron, "PRP"},
	"they": {POSPron, "PRP"}, "me": {POSPron, "PRP"}, "him": {POSPron, "PRP"},
	"her": {POSPron, "PRP"}, "us": {POSPron, "PRP"}, "them": {POSPron, "PRP"},
	"my": {POSPron, "PRP$"}, "your": {POSPron, "PRP$"}, "his": {POSPron, "PRP$"},
	"its": {POSPron, "PRP$"}, "our": {POSPron, "PRP$"}, "their": {POSPron, "PRP$"},
	"who": {POSPron, "WP"}, "whom": {POSPron, "WP"}, "what": {POSPron, "WP"},
	"which": {POSPron, "WDT"}, "whose": {POSPron, "WP$"},
	"someone": {POSPron, "PRP"}, "anyone": {POSPron, "PRP"},
	"everyone": {POSPron, "PRP"}, "nothing": {POSPron, "PRP"},

	// prepositions
	"of": {POSAdp, "IN"}, "in": {POSAdp, "IN"}, "on": {POSAdp, "IN"},
	"at": {POSAdp, "IN"}, "by": {POSAdp, "IN"}, "for": {POSAdp, "IN"},
	"with": {POSAdp, "IN"}, "from": {POSAdp, "IN"}, "into": {POSAdp, "IN"},
	"over": {POSAdp, "IN"}, "under": {POSAdp, "IN"}, "through": {POSAdp, "IN"},
	"between": {POSAdp, "IN"}, "against": {POSAdp, "IN"}, "about": {POSAdp, "IN"},
	"after": {POSAdp, "IN"}, "before": {POSAdp, "IN"}, "above": {POSAdp, "IN"},
	"below": {POSAdp, "IN"}, "behind": {POSAdp, "IN"}, "during": {POSAdp, "IN"},
	"near": {POSAdp, "IN"}, "without": {POSAdp, "IN"}, "upon": {POSAdp, "IN"},

	// conjunctions
	"and": {POSConj, "CC"}, "or": {POSConj, "CC"}, "but": {POSConj, "CC"},
	"nor": {POSConj, "CC"}, "yet": {POSConj, "CC"}, "so": {POSConj, "CC"},
	"because": {POSConj, "IN"}, "while": {POSConj, "IN"}, "if": {POSConj, "IN"},
	"though": {POSConj, "IN"}, "although": {POSConj, "IN"}, "when": {POSAdv, "WRB"},
	"where": {POSAdv, "WRB"}, "why": {POSAdv, "WRB"}, "how": {POSAdv, "WRB"},

	// auxiliaries and modals
	"is": {POSAux, "VBZ"}, "am": {POSAux, "VBP"}, "are": {POSAux, "VBP"},
	"was": {POSAux, "VBD"}, "were": {POSAux, "VBD"}, "be": {POSAux, "VB"},
	"been": {POSAux, "VBN"}, "being": {POSAux, "VBG"},
	"have": {POSAux, "VBP"}, "has": {POSAux, "VBZ"}, "had": {POSAux, "VBD"},
	"having": {POSAux, "VBG"},
	"do":     {POSAux, "VBP"}, "does": {POSAux, "VBZ"}, "did": {POSAux, "VBD"},
	"will": {POSAux, "MD"}, "would": {POSAux, "MD"}, "shall": {POSAux, "MD"},
	"should": {POSAux, "MD"}, "can": {POSAux, "MD"}, "could": {POSAux, "MD"},
	"may": {POSAux, "MD"}, "might": {POSAux, "MD"}, "must": {POSAux, "MD"},

	// particles
	"to": {POSPart, "TO"}, "not": {POSPart, "RB"},

	// adverbs
	"very": {POSAdv, "RB"}, "too": {POSAdv, "RB"}, "also": {POSAdv, "RB"},
	"just": {POSAdv, "RB"}, "only": {POSAdv, "RB"}, "never": {POSAdv, "RB"},
	"always": {POSAdv, "RB"}, "often": {POSAdv, "RB"}, "again": {POSAdv, "RB"},
	"here": {POSAdv, "RB"}, "there": {POSAdv, "RB"}, "now": {POSAdv, "RB"},
	"then": {POSAdv, "RB"}, "still": {POSAdv, "RB"}, "even": {POSAdv, "RB"},
	"quickly": {POSAdv, "RB"}, "slowly": {POSAdv, "RB"}, "away": {POSAdv, "RB"},
	"far": {POSAdv, "RB"}, "soon": {POSAdv, "RB"}, "once": {POSAdv, "RB"},

	// common verbs (citation forms)
	"go": {POSVerb, ""}, "get": {POSVerb, ""}, "make": {POSVerb, ""},
	"know": {POSVerb, ""}, "think": {POSVerb, ""}, "take": {POSVerb, ""},
	"see": {POSVerb, ""}, "come": {POSVerb, ""}, "want": {POSVerb, ""},
	"look": {POSVerb, ""}, "use": {POSVerb, ""}, "find": {POSVerb, ""},
	"give": {POSVerb, ""}, "tell": {POSVerb, ""}, "work": {POSVerb, ""},
	"call": {POSVerb, ""}, "try": {POSVerb, ""}, "ask": {POSVerb, ""},
	"need": {POSVerb, ""}, "feel": {POSVerb, ""}, "become": {POSVerb, ""},
	"leave": {POSVerb, ""}, "put": {POSVerb, ""}, "mean": {POSVerb, ""},
	"keep": {POSVerb, ""}, "let": {POSVerb, ""}, "begin": {POSVerb, ""},
	"seem": {POSVerb, ""}, "help": {POSVerb, ""}, "talk": {POSVerb, ""},
	"turn": {POSVerb, ""}, "start": {POSVerb, ""}, "show": {POSVerb, ""},
	"hear": {POSVerb, ""}, "play": {POSVerb, ""}, "run": {POSVerb, ""},
	"move": {POSVerb, ""}, "live": {POSVerb, ""}, "believe": {POSVerb, ""},
	"hold": {POSVerb, ""}, "bring": {POSVerb, ""}, "happen": {POSVerb, ""},
	"write": {POSVerb, ""}, "sit": {POSVerb, ""}, "stand": {POSVerb, ""},
	"lose": {POSVerb, ""}, "pay": {POSVerb, ""}, "meet": {POSVerb, ""},
	"jump": {POSVerb, ""}, "walk": {POSVerb, ""}, "stay": {POSVerb, ""},
	"sing": {POSVerb, ""}, "dance": {POSVerb, ""}, "sleep": {POSVerb, ""},
	"dream": {POSVerb, ""}, "love": {POSVerb, ""}, "hate": {POSVerb, ""},
	"fall": {POSVerb, ""}, "rise": {POSVerb, ""}, "shine": {POSVerb, ""},
	"fly": {POSVerb, ""}, "cry": {POSVerb, ""}, "laugh": {POSVerb, ""},
	"speak": {POSVerb, ""}, "read": {POSVerb, ""}, "eat": {POSVerb, ""},
	"drink": {POSVerb, ""}, "open": {POSVerb, ""}, "close": {POSVerb, ""},
	"wait": {POSVerb, ""}, "watch": {POSVerb, ""}, "follow": {POSVerb, ""},
	"stop": {POSVerb, ""}, "change": {POSVerb, ""}, "carry": {POSVerb, ""},
	"break": {POSVerb, ""}, "burn": {POSVerb, ""}, "grow": {POSVerb, ""},

	// common nouns (singular citation forms)
	"time": {POSNoun, ""}, "year": {POSNoun, ""}, "people": {POSNoun, "NNS"},
	"way": {POSNoun, ""}, "day": {POSNoun, ""}, "man": {POSNoun, ""},
	"thing": {POSNoun, ""}, "woman": {POSNoun, ""}, "life": {POSNoun, ""},
	"child": {POSNoun, ""}, "world": {POSNoun, ""}, "hand": {POSNoun, ""},
	"part": {POSNoun, ""}, "place": {POSNoun, ""}, "word": {POSNoun, ""},
	"house": {POSNoun, ""}, "home": {POSNoun, ""}, "night": {POSNoun, ""},
	"water": {POSNoun, ""}, "room": {POSNoun, ""}, "mother": {POSNoun, ""},
	"father": {POSNoun, ""}, "friend": {POSNoun, ""}, "eye": {POSNoun, ""},
	"face": {POSNoun, ""}, "door": {POSNoun, ""}, "heart": {POSNoun, ""},
	"song": {POSNoun, ""}, "voice": {POSNoun, ""}, "light": {POSNoun, ""},
	"fire": {POSNoun, ""}, "rain": {POSNoun, ""}, "wind": {POSNoun, ""},
	"star": {POSNoun, ""}, "moon": {POSNoun, ""}, "sun": {POSNoun, ""},
	"sky": {POSNoun, ""}, "sea": {POSNoun, ""}, "road": {POSNoun, ""},
	"dog": {POSNoun, ""}, "cat": {POSNoun, ""}, "bird": {POSNoun, ""},
	"fox": {POSNoun, ""}, "rose": {POSNoun, ""}, "tree": {POSNoun, ""},
	"stone": {POSNoun, ""}, "river": {POSNoun, ""}, "mountain": {POSNoun, ""},
	"city": {POSNoun, ""}, "street": {POSNoun, ""}, "name": {POSNoun, ""},
	"lady": {POSNoun, ""}, "boy": {POSNoun, ""}, "girl": {POSNoun, ""},
	"banana": {POSNoun, ""}, "morning": {POSNoun, ""}, "line": {POSNoun, ""},
	"dust": {POSNoun, ""}, "shadow": {POSNoun, ""}, "flame": {POSNoun, ""},

	// common adjectives
	"good": {POSAdj, "JJ"}, "new": {POSAdj, "JJ"}, "old": {POSAdj, "JJ"},
	"great": {POSAdj, "JJ"}, "big": {POSAdj, "JJ"}, "small": {POSAdj, "JJ"},
	"little": {POSAdj, "JJ"}, "long": {POSAdj, "JJ"}, "young": {POSAdj, "JJ"},
	"high": {POSAdj, "JJ"}, "low": {POSAdj, "JJ"}, "tall": {POSAdj, "JJ"},
	"short": {POSAdj, "JJ"}, "dark": {POSAdj, "JJ"}, "bright": {POSAdj, "JJ"},
	"cold": {POSAdj, "JJ"}, "hot": {POSAdj, "JJ"}, "warm": {POSAdj, "JJ"},
	"quick": {POSAdj, "JJ"}, "slow": {POSAdj, "JJ"}, "lazy": {POSAdj, "JJ"},
	"happy": {POSAdj, "JJ"}, "sad": {POSAdj, "JJ"}, "free": {POSAdj, "JJ"},
	"true": {POSAdj, "JJ"}, "sweet": {POSAdj, "JJ"}, "wild": {POSAdj, "JJ"},
	"deep": {POSAdj, "JJ"}, "soft": {POSAdj, "JJ"}, "loud": {POSAdj, "JJ"},
	"quiet": {POSAdj, "JJ"}, "empty": {POSAdj, "JJ"}, "full": {POSAdj, "JJ"},
	"black": {POSAdj, "JJ"}, "white": {POSAdj, "JJ"}, "red": {POSAdj, "JJ"},
	"blue": {POSAdj, "JJ"}, "green": {POSAdj, "JJ"}, "brown": {POSAdj, "JJ"},
	"golden": {POSAdj, "JJ"}, "silver": {POSAdj, "JJ"}, "broken": {POSAdj, "JJ"},
	"lonely": {POSAdj, "JJ"}, "gentle": {POSAdj, "JJ"}, "heavy": {POSAdj, "JJ"},

	// clitics produced by the tokenizer
	"n't": {POSPart, "RB"}, "'ll": {POSAux, "MD"}, "'re": {POSAux, "VBP"},
	"'ve": {POSAux, "VBP"}, "'d": {POSAux, "MD"}, "'s": {POSPart, "POS"},
	"'m": {POSAux, "VBP"},
}

// irregular inflected forms that the suffix rules cannot reach
var irregularForms = map[string]struct {
	pos   string
	tag   string
	lemma string
}{
	"went": {POSVerb, "VBD", "go"}, "gone": {POSVerb, "VBN", "go"},
	"made": {POSVerb, "VBD", "make"}, "took": {POSVerb, "VBD", "take"},
	"taken": {POSVerb, "VBN", "take"}, "got": {POSVerb, "VBD", "get"},
	"gotten": {POSVerb, "VBN", "get"}, "saw": {POSVerb, "VBD", "see"},
	"seen": {POSVerb, "VBN", "see"}, "came": {POSVerb, "VBD", "come"},
	"knew": {POSVerb, "VBD", "know"}, "known": {POSVerb, "VBN", "know"},
	"thought": {POSVerb, "VBD", "think"}, "found": {POSVerb, "VBD", "find"},
	"gave": {POSVerb, "VBD", "give"}, "given": {POSVerb, "VBN", "give"},
	"told": {POSVerb, "VBD", "tell"}, "felt": {POSVerb, "VBD", "feel"},
	"left": {POSVerb, "VBD", "leave"}, "meant": {POSVerb, "VBD", "mean"},
	"kept": {POSVerb, "VBD", "keep"}, "began": {POSVerb, "VBD", "begin"},
	"begun": {POSVerb, "VBN", "begin"}, "ran": {POSVerb, "VBD", "run"},
	"held": {POSVerb, "VBD", "hold"}, "brought": {POSVerb, "VBD", "bring"},
	"wrote": {POSVerb, "VBD", "write"}, "written": {POSVerb, "VBN", "write"},
	"sat": {POSVerb, "VBD", "sit"}, "stood": {POSVerb, "VBD", "stand"},
	"lost": {POSVerb, "VBD", "lose"}, "paid": {POSVerb, "VBD", "pay"},
	"met": {POSVerb, "VBD", "meet"}, "sang": {POSVerb, "VBD", "sing"},
	"sung": {POSVerb, "VBN", "sing"}, "slept": {POSVerb, "VBD", "sleep"},
	"fell": {POSVerb, "VBD", "fall"}, "fallen": {POSVerb, "VBN", "fall"},
	"risen": {POSVerb, "VBN", "rise"},
	"shone": {POSVerb, "VBD", "shine"}, "flew": {POSVerb, "VBD", "fly"},
	"flown": {POSVerb, "VBN", "fly"}, "spoke": {POSVerb, "VBD", "speak"},
	"spoken": {POSVerb, "VBN", "speak"}, "ate": {POSVerb, "VBD", "eat"},
	"eaten": {POSVerb, "VBN", "eat"}, "drank": {POSVerb, "VBD", "drink"},
	"drunk": {POSVerb, "VBN", "drink"}, "broke": {POSVerb, "VBD", "break"},
	"grew": {POSVerb, "VBD", "grow"}, "grown": {POSVerb, "VBN", "grow"},
	"heard": {POSVerb, "VBD", "hear"}, "said": {POSVerb, "VBD", "say"},

	"men": {POSNoun, "NNS", "man"}, "women": {POSNoun, "NNS", "woman"},
	"children": {POSNoun, "NNS", "child"}, "feet": {POSNoun, "NNS", "foot"},
	"teeth": {POSNoun, "NNS", "tooth"}, "mice": {POSNoun, "NNS", "mouse"},
	"geese": {POSNoun, "NNS", "goose"}, "lives": {POSNoun, "NNS", "life"},
	"leaves": {POSNoun, "NNS", "leaf"},

	"better": {POSAdj, "JJR", "good"}, "best": {POSAdj, "JJS", "good"},
	"worse": {POSAdj, "JJR", "bad"}, "worst": {POSAdj, "JJS", "bad"},
	"more": {POSAdj, "JJR", "much"}, "most": {POSAdj, "JJS", "much"},
	"less": {POSAdj, "JJR", "little"}, "least": {POSAdj, "JJS", "little"},
}
