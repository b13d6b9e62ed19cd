package fivehundred

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
)

func document(t testing.TB, src string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(src))
	if err != nil {
		t.Fatal(err)
	}
	return doc
}

const liveListingPage = `<html><body><table id="table_match">
<tr><td>header</td></tr>
<tr gy="1" fid="1001" sid="36" status="1">
	<td><input type="checkbox">周一001</td>
	<td class="ssbox_01" bgcolor="#FF3333"><a href="#">英超</a></td>
	<td>第8轮</td>
	<td>10-20 20:00</td>
	<td>上半场</td>
	<td><a href="https://liansai.500.com/team/662/">曼城</a></td>
	<td><div class="pk"><a class="clt1">1</a><a class="clt2">-</a><a class="clt3">0</a></div></td>
	<td><a href="https://liansai.500.com/team/663/">利物浦</a></td>
	<td>1-0</td>
</tr>
<tr gy="1" fid="1002" sid="36" status="">
	<td></td>
	<td class="ssbox_01" bgcolor="#FF3333"><a href="#">英超</a></td>
	<td>第8轮</td>
	<td>10-20 22:00</td>
	<td>中场结束</td>
	<td>阿森纳</td>
	<td><div class="pk"><a class="clt1">0</a><a class="clt3">0</a></div></td>
	<td><a href="/team/665/">切尔西</a></td>
	<td>0-0</td>
</tr>
<tr gy="1" sid="36">
	<td></td><td class="ssbox_01"><a>英超</a></td><td>第8轮</td>
</tr>
<tr gy="1" fid="1001" sid="36">
	<td></td><td class="ssbox_01"><a>英超</a></td><td>第8轮</td>
</tr>
</table></body></html>`

const historyListingPage = `<html><body><table>
<tr gy="1" fid="2001" sid="92" status="4">
	<td class="ssbox_01" bgcolor="#006633"><a>德甲</a></td>
	<td>第5轮</td>
	<td>10-18 21:30</td>
	<td>完</td>
	<td><a href="https://liansai.500.com/team/1201/">拜仁</a></td>
	<td><a href="#">3 - 1</a></td>
	<td><a href="https://liansai.500.com/team/1202/">多特蒙德</a></td>
	<td>(1:0)</td>
</tr>
<tr gy="1" fid="2002" sid="92">
	<td class="ssbox_01"><a>德甲</a></td>
	<td>第5轮</td>
	<td>10-18 23:30</td>
</tr>
<tr gy="1" fid="2003" sid="92" status="">
	<td class="ssbox_01"><a>德甲</a></td>
	<td>第5轮</td>
	<td>10-18 23:30</td>
	<td>改期</td>
	<td>柏林联合</td>
	<td>2 2</td>
	<td>美因茨</td>
	<td></td>
</tr>
</table></body></html>`

const futureListingPage = `<html><body><table>
<tr gy="1" fid="3001" sid="34">
	<td class="ssbox_01" bgcolor="#0066FF"><a>意甲</a></td>
	<td>第9轮</td>
	<td>10-25 02:45</td>
	<td><a href="https://liansai.500.com/team/801/">国际米兰</a></td>
	<td>VS</td>
	<td><a href="https://liansai.500.com/team/802/">AC米兰</a></td>
</tr>
</table></body></html>`

const detailPage = `<html><body>
<div class="box_side">
	<div class="title">预计首发阵容</div>
	<div class="content"><table>
		<tr><td>#</td><td>球员</td></tr>
		<tr><td>1</td><td>31 埃德森(门将)</td></tr>
		<tr><td>2</td><td>9 哈兰德(前锋)</td></tr>
		<tr><td>3</td><td>unknown player</td></tr>
	</table></div>
</div>
<div class="box_side">
	<div class="title">后备</div>
	<div class="content"><table>
		<tr><td>1</td><td>18 奥尔特加(门将)</td></tr>
	</table></div>
</div>
<div class="box_side"><div class="content"><table><tr><td>1</td><td>99 不计入(前锋)</td></tr></table></div></div>
<div class="box_side">
	<div class="title">预计首发阵容</div>
	<div class="content"><table>
		<tr><td>1</td><td>1 阿利森(门将)</td></tr>
	</table></div>
</div>
<div class="box_side">
	<div class="title">后备</div>
	<div class="content"><table>
		<tr><td>1</td><td>62 凯莱赫(门将)</td></tr>
		<tr><td>2</td><td>11 萨拉赫（前锋）</td></tr>
	</table></div>
</div>
<table class="mtable">
	<tr><td>主队</td><td>事件</td><td>时间</td><td>事件</td><td>客队</td></tr>
	<tr><td><img src="/img/goal.gif"></td><td>哈兰德</td><td>23'</td><td></td><td></td></tr>
	<tr><td></td><td></td><td></td><td></td><td></td></tr>
	<tr><td></td><td>short</td></tr>
	<tr><td></td><td></td><td>67'</td><td>萨拉赫</td><td><img src="/img/yellow.gif"></td></tr>
</table>
<div class="t2">
	<div style="padding:0 50px 30px 50px;"><table>
		<tr>
			<td><div class="bar_bg"><span style="width:120px;"></span></div></td>
			<td>12</td><td>射门</td><td>7</td>
			<td><div class="bar_bg"><span style="width:70px"></span></div></td>
		</tr>
		<tr>
			<td></td><td>60%</td><td>控球率</td><td>40%</td>
			<td><div class="bar_bg"><span style="color:red"></span></div></td>
		</tr>
		<tr><td></td><td>1</td><td></td><td>2</td><td></td></tr>
		<tr><td>too short</td></tr>
	</table></div>
</div>
</body></html>`

const europeanPage = `<html><body><h2>百家欧赔</h2>
<table id="datatb">
	<tr><td>header</td></tr>
	<tr id="293">
		<td>1</td>
		<td class="tb_plgs" title="威廉希尔"><span>威廉希尔</span></td>
		<td><table class="pl_table_data">
			<tr><td>2.10</td><td>3.40</td><td>3.30</td></tr>
			<tr><td>2.05</td><td>3.50</td><td>3.40</td></tr>
		</table></td>
	</tr>
	<tr id="3">
		<td>2</td>
		<td class="tb_plgs" title="立博"><span>立博</span></td>
		<td><table class="pl_table_data">
			<tr><td>2.15</td><td>3.30</td><td>3.25</td></tr>
			<tr><td>2.00</td><td>3.40</td><td>3.60</td></tr>
		</table></td>
	</tr>
	<tr id="5">
		<td>3</td>
		<td class="tb_plgs" title="澳门"><span>澳门</span></td>
		<td><table class="pl_table_data">
			<tr><td>2.20</td><td>3.20</td><td>3.10</td></tr>
		</table></td>
	</tr>
	<tr id="avg"><td class="tb_plgs" title="平均值"></td></tr>
</table></body></html>`

const asianPage = `<html><body><h2>亚盘对比</h2>
<table id="datatb">
	<tr id="1">
		<td>1</td>
		<td><a href="#" title="澳门">澳门</a></td>
		<td><table><tr><td>0.90</td><td>半球</td><td>0.96</td></tr></table></td>
		<td></td>
		<td><table><tr><td>0.88</td><td>半球</td><td>0.98</td></tr></table></td>
		<td></td>
	</tr>
	<tr id="2">
		<td>2</td>
		<td><a href="#" title="皇冠">皇冠</a></td>
		<td><table><tr><td>0.91</td><td>半球</td></tr></table></td>
		<td></td>
		<td><table><tr><td>0.88</td><td>半球</td><td>0.98</td></tr></table></td>
		<td></td>
	</tr>
	<tr id="3">
		<td>3</td>
		<td><a href="#">no title</a></td>
		<td></td><td></td><td></td><td></td>
	</tr>
	<tr id="4"><td>4</td><td>short</td></tr>
</table></body></html>`

const matchDataPage = `<html><body>
<div class="M_sub_title"><span>2024 英超 第8轮 曼城 VS 利物浦</span></div>
<div class="M_box">
	<div class="M_title"><h4>交战历史</h4><span class="his_info">曼城 3胜1平1负</span></div>
	<table class="pub_table">
		<tr><th>赛事</th></tr>
		<tr>
			<td><a href="#">英超</a></td>
			<td>2024-03-10</td>
			<td><a href="#"><span class="dz-l">曼城[1]</span><em>1:1</em><span class="dz-r">利物浦[2]</span></a></td>
			<td>0:1</td>
			<td>平</td>
			<td><p class="pub_table_pl"><span>2.10</span><span>3.40</span><span>3.30</span></p></td>
			<td><p class="pub_table_pl"><span>0.90</span><span>半球</span><span>0.96</span></p></td>
			<td>输</td>
			<td>小</td>
			<td>note</td>
		</tr>
		<tr style="display:none;"><td>hidden</td><td>2020-01-01</td></tr>
		<tr>
			<td>足总杯</td>
			<td>2023-11-25</td>
			<td>利物浦 VS 曼城</td>
		</tr>
		<tr><td></td><td></td><td></td></tr>
	</table>
</div>
<div class="M_box">
	<div class="M_title"><h4>近期战绩</h4></div>
	<div class="team_a">
		<strong class="team_name">曼城</strong>
		<table class="pub_table">
			<tr><th>赛事</th></tr>
			<tr>
				<td><a>英超</a></td><td>2024-10-05</td>
				<td><a><span class="dz-l">富勒姆[12]</span><em>2:3</em><span class="dz-r">曼城[1]</span></a></td>
				<td>受一球</td><td>1:1</td><td>胜</td><td>赢</td><td>大</td>
			</tr>
			<tr><td colspan="8"><p class="record_msg">近10场 7胜2平1负 胜率70%</p></td></tr>
		</table>
	</div>
	<div class="team_b">
		<div class="team_name">利物浦</div>
		<table class="pub_table">
			<tr><th>赛事</th></tr>
			<tr><td>欧冠</td><td>2024-10-02</td><td>博洛尼亚-利物浦</td></tr>
			<tr><td colspan="8">近10场 8胜1平1负</td></tr>
		</table>
	</div>
</div>
<div id="team_zhanji2_1">
	<strong class="team_name">曼城</strong>
	<em id="home_zj2_1">主场</em>
	<table class="pub_table">
		<tr><th>赛事</th></tr>
		<tr>
			<td>英超</td><td>2024-09-28</td>
			<td><a><span class="dz-l">曼城</span><em>1:1</em><span class="dz-r">纽卡斯尔</span></a></td>
			<td>一球</td><td>1:0</td><td>平</td><td>输</td><td>小</td>
		</tr>
	</table>
	<div class="bottom_info"><p>近5场 3胜1平1负</p></div>
</div>
<div id="team_zhanji2_0">
	<strong class="team_name">利物浦</strong>
	<em id="home_zj2_0">主场</em>
	<table class="pub_table">
		<tr><th>赛事</th></tr>
	</table>
	<div class="bottom_info"><p>无数据</p></div>
</div>
<div class="M_box">
	<h4>平均数据</h4>
	<div class="M_sub_title"><span class="team_name">曼城</span><span class="team_name">利物浦</span></div>
	<table class="pub_table">
		<tr><td></td><td>总</td><td>主</td><td>客</td></tr>
		<tr><td>入球</td><td>2.4</td><td>2.8</td><td>2.0</td></tr>
		<tr><td>失球</td><td>0.9</td><td>0.6</td><td>1.2</td></tr>
	</table>
	<table class="pub_table">
		<tr><td></td><td>总</td><td>主</td><td>客</td></tr>
		<tr><td>入球</td><td>2.1</td><td>2.5</td><td>1.7</td></tr>
		<tr><td>失球</td><td>1.0</td><td>0.8</td><td>1.2</td></tr>
	</table>
	<script>var fo = new FlashObject("piefoot2.swf"); sum="10"; total='10'; num1=7; num2=2; num3=1; title1="入：24"; title2="失：9";</script>
	<script>var fo = new FlashObject("other.swf"); sum=1; total=1; num1=1; num2=0; num3=0;</script>
	<script>var fo = new FlashObject("piefoot2.swf"); sum=10; total=10; num1=8; num2=1; num3=1;</script>
</div>
</body></html>`

const leaguePage = `<html><body>
<h2 class="league_title">2024/25英超积分榜</h2>
<table class="lstable1">
	<tr><td>排名</td><td>球队</td><td>赛</td><td>胜</td><td>平</td><td>负</td><td>积分</td></tr>
	<tr><td colspan="7">欧冠区</td></tr>
	<tr><td>1</td><td>利物浦</td><td>8</td><td>7</td><td>0</td><td>1</td><td>21</td></tr>
	<tr><td>2</td><td>曼城</td><td>8</td><td>5</td><td>3</td><td>0</td><td>18</td></tr>
	<tr><td>3</td><td>阿森纳</td><td>8</td></tr>
</table>
<table class="lchart">
	<tr><td>统计</td><td>数据</td></tr>
	<tr><td>场均</td><td>主队场均进球1.62，客队场均进球 1.3 总进球2.92</td></tr>
</table>
</body></html>`
