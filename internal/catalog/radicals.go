package catalog

// radicals is the curated Kangxi radical practice set.
var radicals = []Character{
	{Glyph: "一", Pinyin: "yī", Meaning: "one"},
	{Glyph: "人", Pinyin: "rén", Meaning: "person"},
	{Glyph: "儿", Pinyin: "ér", Meaning: "child, legs"},
	{Glyph: "入", Pinyin: "rù", Meaning: "enter"},
	{Glyph: "刀", Pinyin: "dāo", Meaning: "knife"},
	{Glyph: "力", Pinyin: "lì", Meaning: "power"},
	{Glyph: "又", Pinyin: "yòu", Meaning: "again, right hand"},
	{Glyph: "口", Pinyin: "kǒu", Meaning: "mouth"},
	{Glyph: "囗", Pinyin: "wéi", Meaning: "enclosure"},
	{Glyph: "土", Pinyin: "tǔ", Meaning: "earth"},
	{Glyph: "夕", Pinyin: "xī", Meaning: "evening"},
	{Glyph: "大", Pinyin: "dà", Meaning: "big"},
	{Glyph: "女", Pinyin: "nǚ", Meaning: "woman"},
	{Glyph: "子", Pinyin: "zǐ", Meaning: "child"},
	{Glyph: "寸", Pinyin: "cùn", Meaning: "inch"},
	{Glyph: "小", Pinyin: "xiǎo", Meaning: "small"},
	{Glyph: "山", Pinyin: "shān", Meaning: "mountain"},
	{Glyph: "工", Pinyin: "gōng", Meaning: "work"},
	{Glyph: "巾", Pinyin: "jīn", Meaning: "cloth"},
	{Glyph: "广", Pinyin: "guǎng", Meaning: "shelter, wide"},
	{Glyph: "弓", Pinyin: "gōng", Meaning: "bow"},
	{Glyph: "心", Pinyin: "xīn", Meaning: "heart"},
	{Glyph: "戈", Pinyin: "gē", Meaning: "spear"},
	{Glyph: "手", Pinyin: "shǒu", Meaning: "hand"},
	{Glyph: "日", Pinyin: "rì", Meaning: "sun, day"},
	{Glyph: "月", Pinyin: "yuè", Meaning: "moon, month"},
	{Glyph: "木", Pinyin: "mù", Meaning: "tree, wood"},
	{Glyph: "水", Pinyin: "shuǐ", Meaning: "water"},
	{Glyph: "火", Pinyin: "huǒ", Meaning: "fire"},
	{Glyph: "父", Pinyin: "fù", Meaning: "father"},
	{Glyph: "牛", Pinyin: "niú", Meaning: "cow"},
	{Glyph: "犬", Pinyin: "quǎn", Meaning: "dog"},
	{Glyph: "玉", Pinyin: "yù", Meaning: "jade"},
	{Glyph: "瓜", Pinyin: "guā", Meaning: "melon"},
	{Glyph: "田", Pinyin: "tián", Meaning: "field"},
	{Glyph: "白", Pinyin: "bái", Meaning: "white"},
	{Glyph: "皮", Pinyin: "pí", Meaning: "skin"},
	{Glyph: "目", Pinyin: "mù", Meaning: "eye"},
	{Glyph: "石", Pinyin: "shí", Meaning: "stone"},
	{Glyph: "禾", Pinyin: "hé", Meaning: "grain"},
	{Glyph: "立", Pinyin: "lì", Meaning: "stand"},
	{Glyph: "竹", Pinyin: "zhú", Meaning: "bamboo"},
	{Glyph: "米", Pinyin: "mǐ", Meaning: "rice"},
	{Glyph: "羊", Pinyin: "yáng", Meaning: "sheep"},
	{Glyph: "羽", Pinyin: "yǔ", Meaning: "feather"},
	{Glyph: "老", Pinyin: "lǎo", Meaning: "old"},
	{Glyph: "耳", Pinyin: "ěr", Meaning: "ear"},
	{Glyph: "肉", Pinyin: "ròu", Meaning: "meat"},
	{Glyph: "自", Pinyin: "zì", Meaning: "self"},
	{Glyph: "至", Pinyin: "zhì", Meaning: "arrive"},
	{Glyph: "舌", Pinyin: "shé", Meaning: "tongue"},
	{Glyph: "舟", Pinyin: "zhōu", Meaning: "boat"},
	{Glyph: "虫", Pinyin: "chóng", Meaning: "insect"},
	{Glyph: "血", Pinyin: "xuè", Meaning: "blood"},
	{Glyph: "衣", Pinyin: "yī", Meaning: "clothes"},
	{Glyph: "言", Pinyin: "yán", Meaning: "speech"},
	{Glyph: "贝", Pinyin: "bèi", Meaning: "shell, money"},
	{Glyph: "走", Pinyin: "zǒu", Meaning: "walk"},
	{Glyph: "足", Pinyin: "zú", Meaning: "foot"},
	{Glyph: "车", Pinyin: "chē", Meaning: "cart, vehicle"},
	{Glyph: "金", Pinyin: "jīn", Meaning: "gold, metal"},
	{Glyph: "门", Pinyin: "mén", Meaning: "gate, door"},
	{Glyph: "雨", Pinyin: "yǔ", Meaning: "rain"},
	{Glyph: "页", Pinyin: "yè", Meaning: "page, head"},
	{Glyph: "风", Pinyin: "fēng", Meaning: "wind"},
	{Glyph: "飞", Pinyin: "fēi", Meaning: "fly"},
	{Glyph: "食", Pinyin: "shí", Meaning: "food, eat"},
	{Glyph: "马", Pinyin: "mǎ", Meaning: "horse"},
	{Glyph: "鱼", Pinyin: "yú", Meaning: "fish"},
	{Glyph: "鸟", Pinyin: "niǎo", Meaning: "bird"},
	{Glyph: "龙", Pinyin: "lóng", Meaning: "dragon"},
}
