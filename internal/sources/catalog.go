package sources

import "github.com/aidaily/ai-daily/internal/domain"

// defaultSources is the built-in catalog: international tech press plus
// the Chinese outlets the brief balances against them.
var defaultSources = []Source{
	{
		Name:        "TechCrunch",
		URL:         "https://techcrunch.com",
		Category:    domain.CategoryTechnology,
		SearchURL:   "https://techcrunch.com/tag/artificial-intelligence/",
		RSSURL:      "https://techcrunch.com/feed/",
		Description: "Startup and technology news",
		Language:    "en",
		Region:      "international",
		Priority:    10,
	},
	{
		Name:        "MIT Technology Review",
		URL:         "https://www.technologyreview.com",
		Category:    domain.CategoryResearch,
		SearchURL:   "https://www.technologyreview.com/topic/artificial-intelligence/",
		RSSURL:      "https://www.technologyreview.com/feed/",
		Description: "Research-driven technology journalism",
		Language:    "en",
		Region:      "international",
		Priority:    10,
	},
	{
		Name:        "The Verge",
		URL:         "https://www.theverge.com",
		Category:    domain.CategoryTechnology,
		SearchURL:   "https://www.theverge.com/ai-artificial-intelligence",
		RSSURL:      "https://www.theverge.com/rss/index.xml",
		Description: "Consumer technology and science",
		Language:    "en",
		Region:      "international",
		Priority:    9,
	},
	{
		Name:        "VentureBeat",
		URL:         "https://venturebeat.com",
		Category:    domain.CategoryIndustry,
		SearchURL:   "https://venturebeat.com/category/ai/",
		RSSURL:      "https://venturebeat.com/feed/",
		Description: "Enterprise AI and industry coverage",
		Language:    "en",
		Region:      "international",
		Priority:    8,
	},
	{
		Name:        "Ars Technica",
		URL:         "https://arstechnica.com",
		Category:    domain.CategoryTechnology,
		SearchURL:   "https://arstechnica.com/ai/",
		RSSURL:      "https://feeds.arstechnica.com/arstechnica/index",
		Description: "In-depth technology reporting",
		Language:    "en",
		Region:      "international",
		Priority:    8,
	},
	{
		Name:        "Reuters Tech",
		URL:         "https://www.reuters.com/technology",
		Category:    domain.CategoryBusiness,
		SearchURL:   "https://www.reuters.com/technology/artificial-intelligence/",
		Description: "Business and markets wire coverage",
		Language:    "en",
		Region:      "international",
		Priority:    9,
	},
	{
		Name:        "36氪",
		URL:         "https://36kr.com",
		Category:    domain.CategoryTechnology,
		SearchURL:   "https://36kr.com/search/articles/人工智能",
		RSSURL:      "https://36kr.com/feed",
		Description: "Chinese startup and technology media",
		Language:    "zh-CN",
		Region:      "china",
		Priority:    10,
	},
	{
		Name:        "虎嗅",
		URL:         "https://www.huxiu.com",
		Category:    domain.CategoryTechnology,
		SearchURL:   "https://www.huxiu.com/search/0/人工智能",
		RSSURL:      "https://www.huxiu.com/rss/0.xml",
		Description: "Chinese business and technology commentary",
		Language:    "zh-CN",
		Region:      "china",
		Priority:    9,
	},
	{
		Name:        "钛媒体",
		URL:         "https://www.tmtpost.com",
		Category:    domain.CategoryTechnology,
		SearchURL:   "https://www.tmtpost.com/search?q=人工智能",
		RSSURL:      "https://www.tmtpost.com/rss.xml",
		Description: "TMT sector analysis",
		Language:    "zh-CN",
		Region:      "china",
		Priority:    9,
	},
	{
		Name:        "量子位",
		URL:         "https://www.qbitai.com",
		Category:    domain.CategoryResearch,
		SearchURL:   "https://www.qbitai.com/search?q=人工智能",
		RSSURL:      "https://www.qbitai.com/feed",
		Description: "Dedicated AI media",
		Language:    "zh-CN",
		Region:      "china",
		Priority:    10,
	},
	{
		Name:        "机器之心",
		URL:         "https://www.jiqizhixin.com",
		Category:    domain.CategoryResearch,
		SearchURL:   "https://www.jiqizhixin.com/search?q=人工智能",
		RSSURL:      "https://www.jiqizhixin.com/feed",
		Description: "AI research and industry applications",
		Language:    "zh-CN",
		Region:      "china",
		Priority:    9,
	},
	{
		Name:        "AI前线",
		URL:         "https://www.infoq.cn",
		Category:    domain.CategoryTechnology,
		SearchURL:   "https://www.infoq.cn/search?query=人工智能",
		RSSURL:      "https://www.infoq.cn/feed",
		Description: "Developer-facing AI coverage",
		Language:    "zh-CN",
		Region:      "china",
		Priority:    8,
	},
	{
		Name:        "CSDN",
		URL:         "https://www.csdn.net",
		Category:    domain.CategoryTechnology,
		SearchURL:   "https://so.csdn.net/so/search?q=人工智能",
		RSSURL:      "https://www.csdn.net/rss",
		Description: "Chinese developer community",
		Language:    "zh-CN",
		Region:      "china",
		Priority:    8,
	},
	{
		Name:        "掘金",
		URL:         "https://juejin.cn",
		Category:    domain.CategoryTechnology,
		SearchURL:   "https://juejin.cn/search?query=人工智能",
		RSSURL:      "https://juejin.cn/rss",
		Description: "Chinese engineering community",
		Language:    "zh-CN",
		Region:      "china",
		Priority:    7,
	},
	{
		Name:        "开源中国",
		URL:         "https://www.oschina.net",
		Category:    domain.CategoryTechnology,
		SearchURL:   "https://www.oschina.net/search?scope=all&q=人工智能",
		RSSURL:      "https://www.oschina.net/news/rss",
		Description: "Chinese open source community",
		Language:    "zh-CN",
		Region:      "china",
		Priority:    7,
	},
	{
		Name:        "TechNews科技新报",
		URL:         "https://technews.tw",
		Category:    domain.CategoryTechnology,
		SearchURL:   "https://technews.tw/search/人工智能",
		RSSURL:      "https://technews.tw/feed",
		Description: "Taiwanese technology news",
		Language:    "zh-TW",
		Region:      "taiwan",
		Priority:    6,
	},
}
