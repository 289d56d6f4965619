package catalog

// numbers covers counting from zero to ten plus the common large units.
var numbers = []Character{
	{Glyph: "零", Pinyin: "líng", Meaning: "zero"},
	{Glyph: "一", Pinyin: "yī", Meaning: "one"},
	{Glyph: "二", Pinyin: "èr", Meaning: "two"},
	{Glyph: "三", Pinyin: "sān", Meaning: "three"},
	{Glyph: "四", Pinyin: "sì", Meaning: "four"},
	{Glyph: "五", Pinyin: "wǔ", Meaning: "five"},
	{Glyph: "六", Pinyin: "liù", Meaning: "six"},
	{Glyph: "七", Pinyin: "qī", Meaning: "seven"},
	{Glyph: "八", Pinyin: "bā", Meaning: "eight"},
	{Glyph: "九", Pinyin: "jiǔ", Meaning: "nine"},
	{Glyph: "十", Pinyin: "shí", Meaning: "ten"},
	{Glyph: "百", Pinyin: "bǎi", Meaning: "hundred"},
	{Glyph: "千", Pinyin: "qiān", Meaning: "thousand"},
	{Glyph: "万", Pinyin: "wàn", Meaning: "ten thousand"},
}
