package fetcher

import (
	"context"
	"fmt"
	"time"

	"github.com/aidaily/ai-daily/internal/domain"
	"github.com/aidaily/ai-daily/internal/sources"
)

// SimFetcher serves canned candidates keyed by source name. It stands in
// for the network fetchers in development and in tests, the way the
// original service simulated its crawl. Deterministic for a fixed clock.
type SimFetcher struct {
	now func() time.Time
}

func NewSimFetcher(now func() time.Time) *SimFetcher {
	if now == nil {
		now = time.Now
	}
	return &SimFetcher{now: now}
}

func (f *SimFetcher) Name() string {
	return "sim"
}

func (f *SimFetcher) Fetch(_ context.Context, src sources.Source) ([]domain.Article, error) {
	now := f.now()

	if sample, ok := samples[src.Name]; ok {
		article := sample
		article.Source = src.Name
		article.PublishedAt = now
		return []domain.Article{article}, nil
	}

	// Unknown sources still contribute one generic item, language
	// matching their region.
	generic := domain.Article{
		URL:         src.URL,
		Source:      src.Name,
		PublishedAt: now,
		Category:    domain.CategoryTechnology,
	}
	if src.Region == "china" || src.Region == "taiwan" || src.Region == "hongkong" {
		generic.Title = fmt.Sprintf("%s：AI技术发展最新动态", src.Name)
		generic.Summary = fmt.Sprintf("%s带来人工智能领域的最新发展动态，涵盖技术突破、产业应用与政策法规。", src.Name)
		generic.Tags = []string{"AI技术", "发展动态", "科技创新"}
	} else {
		generic.Title = fmt.Sprintf("Latest AI Developments from %s", src.Name)
		generic.Summary = fmt.Sprintf("Recent artificial intelligence news and updates from %s, covering the latest trends and breakthroughs.", src.Name)
		generic.Tags = []string{"AI", "technology", "innovation"}
	}
	return []domain.Article{generic}, nil
}

// samples mirrors the simulated crawl of the original dashboard: one
// representative story per major source.
var samples = map[string]domain.Article{
	"TechCrunch": {
		Title:      "OpenAI's GPT-5 Preview Shows Major Multimodal Improvements",
		Summary:    "OpenAI has released a preview of GPT-5, showcasing significant improvements in video understanding, code generation, and reasoning capabilities.",
		URL:        "https://techcrunch.com/openai-gpt-5-preview-multimodal-capabilities/",
		Tags:       []string{"OpenAI", "GPT-5", "multimodal", "AI"},
		Category:   domain.CategoryTechnology,
		CoverImage: "https://techcrunch.com/wp-content/uploads/openai-gpt5-preview.jpg",
	},
	"MIT Technology Review": {
		Title:    "EU AI Act Takes Effect: A New Era of AI Regulation Begins",
		Summary:  "The European Union's comprehensive AI regulation comes into force, setting global standards for artificial intelligence governance.",
		URL:      "https://www.technologyreview.com/eu-ai-act-effective-global-regulation/",
		Tags:     []string{"EU", "AI regulation", "policy", "governance"},
		Category: domain.CategoryPolicy,
	},
	"The Verge": {
		Title:    "Tesla FSD Beta 12.0: Enhanced Safety and Performance",
		Summary:  "Tesla releases FSD Beta 12.0 with improved handling of complex road conditions and enhanced safety features.",
		URL:      "https://www.theverge.com/tesla-fsd-beta-12-0-autonomous-driving-upgrade/",
		Tags:     []string{"Tesla", "autonomous driving", "FSD", "safety"},
		Category: domain.CategoryTechnology,
	},
	"VentureBeat": {
		Title:    "AI Medical Diagnosis Surpasses Human Experts in Accuracy",
		Summary:  "New research demonstrates that AI systems now achieve higher accuracy than human experts in multiple disease diagnosis scenarios.",
		URL:      "https://venturebeat.com/ai-medical-diagnosis-accuracy-human-experts/",
		Tags:     []string{"medical AI", "diagnosis", "healthcare"},
		Category: domain.CategoryIndustry,
	},
	"Ars Technica": {
		Title:    "Meta's Llama 3.1: Open Source AI Gets a Major Upgrade",
		Summary:  "Meta releases Llama 3.1 with significant improvements in reasoning and code generation, advancing the open source AI ecosystem.",
		URL:      "https://arstechnica.com/ai/meta-llama-3-1-open-source-performance-upgrade/",
		Tags:     []string{"Meta", "Llama", "open source", "AI"},
		Category: domain.CategoryTechnology,
	},
	"Reuters Tech": {
		Title:    "NVIDIA Hits Record High as AI Chip Demand Soars",
		Summary:  "NVIDIA's stock reaches new heights as artificial intelligence applications drive unprecedented demand for AI chips.",
		URL:      "https://www.reuters.com/technology/nvidia-ai-chip-market-growth-record-high/",
		Tags:     []string{"NVIDIA", "AI chips", "stock market", "semiconductors"},
		Category: domain.CategoryBusiness,
	},
	"36氪": {
		Title:    "百度文心一言4.0发布，多模态能力大幅提升",
		Summary:  "百度发布文心一言4.0版本，在理解能力、创作能力和多模态交互方面有显著提升，支持更复杂的AI应用场景。",
		URL:      "https://36kr.com/p/baidu-wenxin-4-0-release",
		Tags:     []string{"百度", "文心一言", "大语言模型", "多模态"},
		Category: domain.CategoryTechnology,
	},
	"虎嗅": {
		Title:    "阿里云通义千问2.0发布，推理能力提升30%",
		Summary:  "阿里云发布通义千问2.0大模型，在逻辑推理、代码生成和知识问答方面有显著提升。",
		URL:      "https://www.huxiu.com/article/tongyi-qianwen-2-0-release",
		Tags:     []string{"阿里云", "通义千问", "大语言模型"},
		Category: domain.CategoryTechnology,
	},
	"钛媒体": {
		Title:    "字节跳动豆包大模型在多个基准测试中超越GPT-4",
		Summary:  "字节跳动豆包大模型在最新一轮AI基准测试中表现优异，在中文理解、代码生成等任务上超越GPT-4。",
		URL:      "https://www.tmtpost.com/nictation/doubao-benchmark-gpt4",
		Tags:     []string{"字节跳动", "豆包", "大语言模型", "基准测试"},
		Category: domain.CategoryResearch,
	},
	"量子位": {
		Title:    "中科院自动化所在多模态AI领域取得重大突破",
		Summary:  "中科院自动化所研究团队在多模态人工智能领域取得重要进展，新模型在图像理解、视频分析等任务上达到国际领先水平。",
		URL:      "https://www.qbitai.com/cas-multimodal-ai-breakthrough",
		Tags:     []string{"中科院", "多模态AI", "图像理解"},
		Category: domain.CategoryResearch,
	},
	"机器之心": {
		Title:    "清华大学在AI安全领域发布重要研究成果",
		Summary:  "清华大学计算机系在AI安全领域发布最新研究成果，提出新的AI对齐方法。",
		URL:      "https://www.jiqizhixin.com/articles/tsinghua-ai-safety",
		Tags:     []string{"清华大学", "AI安全", "AI对齐"},
		Category: domain.CategoryResearch,
	},
	"CSDN": {
		Title:    "国内AI开源社区蓬勃发展，多个项目获得国际关注",
		Summary:  "中国AI开源社区发展迅速，多个优秀的开源AI项目在国际上获得广泛关注。",
		URL:      "https://blog.csdn.net/article/china-ai-open-source",
		Tags:     []string{"AI开源", "开源社区", "中国AI"},
		Category: domain.CategoryTechnology,
	},
	"掘金": {
		Title:    "前端AI开发工具链日趋完善，开发者效率大幅提升",
		Summary:  "AI工具链从代码生成到测试自动化日趋完善，开发者工作效率得到显著提升。",
		URL:      "https://juejin.cn/post/frontend-ai-tools",
		Tags:     []string{"前端开发", "AI工具", "开发效率"},
		Category: domain.CategoryTechnology,
	},
	"开源中国": {
		Title:    "华为昇腾AI生态建设加速，合作伙伴数量突破1000家",
		Summary:  "华为昇腾AI生态建设持续加速，合作伙伴覆盖芯片、软件、应用等多个层面。",
		URL:      "https://www.oschina.net/news/huawei-ascend-ai-ecosystem",
		Tags:     []string{"华为", "昇腾AI", "产业生态"},
		Category: domain.CategoryIndustry,
	},
}
